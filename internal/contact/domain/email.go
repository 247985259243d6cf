package domain

import (
	"regexp"
	"strings"
)

// emailRegex is a conservative email grammar: a printable local part, "@",
// then dot-separated DNS labels of at most 63 characters each.
var emailRegex = regexp.MustCompile(
	"^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?" +
		"(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$",
)

// Email is a validated email address. Every live value holds the canonical
// trimmed, lower-cased form and satisfies the email grammar.
type Email struct {
	value string
}

// NewEmail validates raw input and returns the canonical email value.
// Inputs differing only in case or surrounding whitespace yield equal values.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))

	if trimmed == "" {
		return Email{}, ErrEmailEmpty
	}

	if !emailRegex.MatchString(trimmed) {
		return Email{}, &InvalidEmailError{Input: raw}
	}

	return Email{value: trimmed}, nil
}

// Value returns the canonical email string.
func (e Email) Value() string {
	return e.value
}

// LocalPart returns the part before the first "@".
func (e Email) LocalPart() string {
	local, _, _ := strings.Cut(e.value, "@")
	return local
}

// Domain returns the part after the first "@".
func (e Email) Domain() string {
	_, domain, _ := strings.Cut(e.value, "@")
	return domain
}

func (e Email) String() string {
	return e.value
}
