package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/errors"
)

type tagRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Color string `json:"color" validate:"required,hexcolor3or6"`
	Slug  string `json:"slug" validate:"required,slug"`
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,username"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&tagRequest{Name: "Dinner", Color: "#abc", Slug: "dinner_time"}))
	assert.NoError(t, v.Validate(&signupRequest{Email: "a@b.io", Username: "alice.l+1"}))

	err := v.Validate(&tagRequest{Name: "Dinner", Color: "#abcd", Slug: "late dinner"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "color must be a hex color")
	assert.Contains(t, appErr.Details(), "slug may contain only")

	err = v.Validate(&signupRequest{Email: "nope", Username: "bad name"})
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "email must be a valid email address")
	assert.Contains(t, appErr.Details(), "username may contain only")
}
