package model

import "time"

// ChallengeManager issues and validates verification challenges.
// A challenge binds a verification code to the moment a verification session started.
type ChallengeManager interface {
	Issue(code string, issuedAt time.Time) (string, error)
	Parse(token string, code string) (time.Time, error)
}
