package validator

import (
	"testing"

	domainerrors "sellbase/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type partialPayload struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
}

func TestValidate_ValidPayloadPasses(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Name:            "Ana",
		Email:           "ana@x.com",
		Password:        "12345678",
		ConfirmPassword: "12345678",
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsFieldsInDeclarationOrder(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := validationErr.Fields()
	require.Len(t, fields, 4)
	assert.Equal(t, "name", fields[0].Path)
	assert.Equal(t, "email", fields[1].Path)
	assert.Equal(t, "password", fields[2].Path)
	assert.Equal(t, "confirmPassword", fields[3].Path)
	assert.Equal(t, "name is required", fields[0].Message)
}

func TestValidate_PasswordMismatch(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Name:            "Ana",
		Email:           "ana@x.com",
		Password:        "12345678",
		ConfirmPassword: "87654321",
	})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := validationErr.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "confirmPassword", fields[0].Path)
	assert.Equal(t, "passwords do not match", fields[0].Message)
}

func TestValidate_EmailFormat(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Name:            "Ana",
		Email:           "not-an-email",
		Password:        "12345678",
		ConfirmPassword: "12345678",
	})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := validationErr.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "email", fields[0].Path)
	assert.Equal(t, "email must be a valid email address", fields[0].Message)
}

func TestValidate_OmittedOptionalFieldsAreSkipped(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&partialPayload{}))

	email := "ana@x.com"
	assert.NoError(t, v.Validate(&partialPayload{Email: &email}))
}

func TestValidate_PresentOptionalFieldsKeepTheirRules(t *testing.T) {
	v := New()

	bad := "nope"
	err := v.Validate(&partialPayload{Email: &bad})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Fields(), 1)
	assert.Equal(t, "email", validationErr.Fields()[0].Path)
}
