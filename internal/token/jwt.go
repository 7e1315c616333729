package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dtroode/agreement-server/internal/model"
)

// Claims represents verification challenge claims.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"typ"`
}

// JWT implements ChallengeManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new challenge manager with the provided secret key.
func NewJWT(secretKey string) *JWT {
	return &JWT{secretKey: secretKey}
}

var _ model.ChallengeManager = (*JWT)(nil)

const typeChallenge = "verification_challenge"

// Issue signs a challenge for the verification code, stamped with issuedAt.
func (j *JWT) Issue(code string, issuedAt time.Time) (string, error) {
	if code == "" {
		return "", fmt.Errorf("%w: verification code is required", model.ErrInvalidInput)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  code,
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
		TokenType: typeChallenge,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign challenge: %w", err)
	}

	return tokenString, nil
}

// Parse validates the challenge and returns the moment it was issued.
// Freshness is not judged here; the verification report does that.
func (j *JWT) Parse(tokenString string, code string) (time.Time, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return time.Time{}, errors.Join(model.ErrChallengeInvalid, err)
	}
	if !token.Valid {
		return time.Time{}, model.ErrChallengeInvalid
	}
	if claims.TokenType != typeChallenge {
		return time.Time{}, fmt.Errorf("%w: token type mismatch: %s", model.ErrChallengeInvalid, claims.TokenType)
	}
	if claims.IssuedAt == nil {
		return time.Time{}, fmt.Errorf("%w: missing issue time", model.ErrChallengeInvalid)
	}
	if claims.Subject != code {
		return time.Time{}, model.ErrChallengeMismatch
	}
	return claims.IssuedAt.Time, nil
}
