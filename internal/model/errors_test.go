package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrAlreadySigned(t *testing.T) {
	err := fmt.Errorf("failed to sign agreement: %w", ErrAlreadySigned)

	assert.ErrorIs(t, err, ErrAlreadySigned)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "agreement already signed")
}
