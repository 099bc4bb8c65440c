package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"foodgram/internal/errors"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("cooking_time must be at least 1")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrNotFound))
	assert.Equal(t, "cooking_time must be at least 1", detailed.Details())
	assert.Equal(t, http.StatusBadRequest, detailed.HTTPCode())
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrRecipeNotFound.WrapMessage("failed to load recipe")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "RECIPE_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, errors.Is(wrapped, ErrRecipeNotFound))
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert recipe")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert recipe", err.Details())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
