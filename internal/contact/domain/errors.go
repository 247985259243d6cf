package domain

import (
	"fmt"

	"github.com/allisson/phonebook/internal/errors"
)

// Contact-specific error definitions.
var (
	// ErrContactNotFound indicates no contact exists with the specified ID.
	ErrContactNotFound = errors.Wrap(errors.ErrNotFound, "contact not found")

	// ErrContactAlreadyExists indicates a contact with the specified ID is already stored.
	ErrContactAlreadyExists = errors.Wrap(errors.ErrConflict, "contact already exists")

	// ErrEmailEmpty indicates the email input was empty after trimming.
	ErrEmailEmpty = errors.Wrap(errors.ErrInvalidInput, "email cannot be empty")

	// ErrPhoneNumberEmpty indicates the phone number input was empty after cleaning.
	ErrPhoneNumberEmpty = errors.Wrap(errors.ErrInvalidInput, "phone number cannot be empty")
)

// InvalidEmailError indicates the input does not match the email grammar.
// It carries the original input for diagnostics.
type InvalidEmailError struct {
	Input string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email format: %s", e.Input)
}

func (e *InvalidEmailError) Unwrap() error {
	return errors.ErrInvalidInput
}

// InvalidPhoneNumberError indicates the cleaned input does not match the
// phone number grammar. It carries the original input for diagnostics.
type InvalidPhoneNumberError struct {
	Input string
}

func (e *InvalidPhoneNumberError) Error() string {
	return fmt.Sprintf("invalid phone number format: %s", e.Input)
}

func (e *InvalidPhoneNumberError) Unwrap() error {
	return errors.ErrInvalidInput
}
