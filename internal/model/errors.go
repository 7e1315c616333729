package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a required field is empty or missing.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when an agreement, template or code is unknown.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when a business rule is violated.
	ErrValidation = errors.New("validation failed")
	// ErrAlreadySigned is returned when signing an agreement that already carries signatures.
	// It is a validation failure and matches ErrValidation.
	ErrAlreadySigned = fmt.Errorf("%w: agreement already signed", ErrValidation)
	// ErrDuplicateCode is returned by stores when a verification code is already taken.
	ErrDuplicateCode = errors.New("verification code already exists")
	// ErrIntegration is returned when an external collaborator is unavailable or misbehaves.
	ErrIntegration = errors.New("integration failure")
	// ErrPersistence is returned when a storage operation fails.
	ErrPersistence = errors.New("persistence failure")
)
