package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	err := Wrap(ErrContributionExists).WithData("existing").WithCode("RES_002")

	assert.True(t, errors.Is(err, ErrContributionExists))
	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrResourceNotFound))
	assert.Equal(t, ErrContributionExists.Message, err.Error())

	// the shared sentinel is left untouched
	assert.Nil(t, ErrContributionExists.Data)
	assert.Empty(t, ErrContributionExists.Code)
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewForbiddenError("You can only view your own department."))

	var customErr *CustomError
	assert.True(t, errors.As(wrapped, &customErr))
	assert.Equal(t, "You can only view your own department.", customErr.Message)
	assert.True(t, errors.Is(wrapped, ErrPermissionDenied))
}

func TestIs(t *testing.T) {
	err := NewValidationError("Validation failed.", []string{"academy"})

	assert.True(t, Is(err, ErrBadRequest, ErrValidationFailed))
	assert.False(t, Is(err, ErrBadRequest, ErrConflict))
	assert.Equal(t, []string{"academy"}, err.Errors)
}

func TestCustomErrorMessageFallback(t *testing.T) {
	assert.Equal(t, "conflict", (&CustomError{Err: ErrConflict}).Error())
	assert.Equal(t, "unknown error", (&CustomError{}).Error())
}
