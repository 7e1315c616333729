package verification

import (
	"fmt"

	"github.com/dtroode/agreement-server/internal/model"
)

// Error reports a missing verification input.
type Error struct {
	Op    string
	Field string
}

func (e *Error) Error() string {
	return fmt.Sprintf("verification: %s: %s is required", e.Op, e.Field)
}

// Unwrap lets callers match verification input errors with model.ErrInvalidInput.
func (e *Error) Unwrap() error {
	return model.ErrInvalidInput
}

func missing(op, field string) error {
	return &Error{Op: op, Field: field}
}
