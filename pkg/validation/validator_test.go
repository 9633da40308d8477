package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"pwd"`
	Age      int    `validate:"gte=18"`
}

func TestStructReportsEveryFailedField(t *testing.T) {
	err := Struct(signupForm{Email: "not-an-email", Password: "short", Age: 12})
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "email must be a valid email address")
	assert.Contains(t, msg, "password must be at least 8 characters")
	assert.Contains(t, msg, "age must be 18 or greater")
}

func TestStructPassesValidInput(t *testing.T) {
	err := Struct(signupForm{Email: "a@x.com", Password: "password123", Age: 30})
	assert.NoError(t, err)
}

func TestStructEmptyRequiredFields(t *testing.T) {
	err := Struct(signupForm{Password: "password123", Age: 20})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
}

func TestToDetailsNonValidatorError(t *testing.T) {
	details := ToDetails(assert.AnError)
	assert.Equal(t, map[string]string{"input": "is invalid"}, details)
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
