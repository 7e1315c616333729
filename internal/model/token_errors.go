package model

import "errors"

var (
	ErrChallengeInvalid  = errors.New("verification challenge invalid")
	ErrChallengeMismatch = errors.New("verification challenge issued for another code")
)
