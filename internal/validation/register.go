package validation

import (
	"errors"
)

var (
	ErrMissingUsername     = errors.New("must provide username")
	ErrMissingPassword     = errors.New("must provide password")
	ErrMissingConfirmation = errors.New("must provide a confirmation for your password")
	ErrPasswordMismatch    = errors.New("confirmation must be the same as password")
)

// ValidateRegistration checks the registration form fields. Username matching
// is left to the credential store; this only covers presence and the
// password/confirmation pair.
func ValidateRegistration(username, password, confirmation string) error {
	if username == "" {
		return ErrMissingUsername
	}
	if password == "" {
		return ErrMissingPassword
	}
	if confirmation == "" {
		return ErrMissingConfirmation
	}
	if confirmation != password {
		return ErrPasswordMismatch
	}
	return nil
}

// ValidateLogin checks the login form fields.
func ValidateLogin(username, password string) error {
	if username == "" {
		return ErrMissingUsername
	}
	if password == "" {
		return ErrMissingPassword
	}
	return nil
}
