package verification

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/dtroode/agreement-server/internal/model"
)

// CodeLength is the number of hex characters in a verification code.
const CodeLength = 12

// Hash returns the hex SHA-256 digest of content.
func Hash(content string) (string, error) {
	if content == "" {
		return "", missing("hash", "content")
	}
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:]), nil
}

// NewRecord captures the content hash of an agreement at now.
func NewRecord(agreementID string, content string, now time.Time) (model.VerificationRecord, error) {
	if agreementID == "" {
		return model.VerificationRecord{}, missing("create record", "agreement id")
	}
	contentHash, err := Hash(content)
	if err != nil {
		return model.VerificationRecord{}, missing("create record", "content")
	}
	return model.VerificationRecord{
		AgreementID: agreementID,
		ContentHash: contentHash,
		Timestamp:   now.UTC(),
		Status:      model.RecordStatusCreated,
	}, nil
}

// MarkSigned returns a copy of record moved to the signed state.
func MarkSigned(record model.VerificationRecord, signedAt time.Time) model.VerificationRecord {
	at := signedAt.UTC()
	record.Status = model.RecordStatusSigned
	record.SignedAt = &at
	return record
}

// GenerateCode derives a short public lookup code from the agreement id,
// its content hash and the moment of generation.
func GenerateCode(agreementID string, contentHash string, at time.Time) (string, error) {
	if agreementID == "" {
		return "", missing("generate code", "agreement id")
	}
	if contentHash == "" {
		return "", missing("generate code", "content hash")
	}
	seed := fmt.Sprintf("%s-%s-%s", agreementID, contentHash, at.UTC().Format(time.RFC3339Nano))
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])[:CodeLength], nil
}
