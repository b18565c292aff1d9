package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegistration(t *testing.T) {
	assert.NoError(t, ValidateRegistration("alice", "secret", "secret"))
	assert.ErrorIs(t, ValidateRegistration("", "secret", "secret"), ErrMissingUsername)
	assert.ErrorIs(t, ValidateRegistration("alice", "", ""), ErrMissingPassword)
	assert.ErrorIs(t, ValidateRegistration("alice", "secret", ""), ErrMissingConfirmation)
	assert.ErrorIs(t, ValidateRegistration("alice", "secret", "other"), ErrPasswordMismatch)
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin("alice", "secret"))
	assert.ErrorIs(t, ValidateLogin("", "secret"), ErrMissingUsername)
	assert.ErrorIs(t, ValidateLogin("alice", ""), ErrMissingPassword)
}
