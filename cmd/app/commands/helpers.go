// Package commands contains CLI command implementations for the application.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/allisson/phonebook/internal/contact/domain"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// parseContactID converts a contact ID string into a domain value.
func parseContactID(raw string) (domain.ContactID, error) {
	id, err := domain.ParseContactID(raw)
	if err != nil {
		return domain.ContactID{}, fmt.Errorf("invalid contact ID format: %w", err)
	}
	return id, nil
}

// parsePhoneNumbers converts raw phone number strings into domain values.
// The first invalid entry aborts the whole batch.
func parsePhoneNumbers(raws []string) ([]domain.PhoneNumber, error) {
	phones := make([]domain.PhoneNumber, 0, len(raws))
	for _, raw := range raws {
		phone, err := domain.NewPhoneNumber(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid phone number %q: %w", raw, err)
		}
		phones = append(phones, phone)
	}
	return phones, nil
}

// parseEmails converts raw email strings into domain values.
// The first invalid entry aborts the whole batch.
func parseEmails(raws []string) ([]domain.Email, error) {
	emails := make([]domain.Email, 0, len(raws))
	for _, raw := range raws {
		email, err := domain.NewEmail(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid email %q: %w", raw, err)
		}
		emails = append(emails, email)
	}
	return emails, nil
}
