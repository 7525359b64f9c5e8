package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email  string  `json:"email" validate:"required,email"`
	Role   string  `json:"role" validate:"omitempty,is-self-role"`
	Status string  `json:"status" validate:"omitempty,is-booking-status"`
	Bio    *string `json:"bio" validate:"omitempty,max=5"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Email: "a@b.co", Role: "expert", Status: "confirmed"}))

	long := "too long"
	err := v.Validate(&sample{Email: "nope", Role: "admin", Status: "done", Bio: &long})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "Must be one of: founder, expert, investor", vErr.Errors["role"])
	assert.Contains(t, vErr.Errors, "status")
	assert.Contains(t, vErr.Errors, "bio")
	assert.Contains(t, vErr.Error(), "field 'bio'")
}
