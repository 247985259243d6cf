package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// phoneRegex accepts an optional "+" country code of 1-3 digits followed by
// a 10-15 digit subscriber number.
var phoneRegex = regexp.MustCompile(`^(\+\d{1,3})?\d{10,15}$`)

// PhoneNumber is a validated phone number. Every live value holds the cleaned
// digit form (ASCII digits plus an optional leading "+").
type PhoneNumber struct {
	value string
}

// NewPhoneNumber validates raw input and returns the cleaned phone value.
// Cleaning strips every character except ASCII digits and "+".
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	if strings.TrimSpace(raw) == "" {
		return PhoneNumber{}, ErrPhoneNumberEmpty
	}

	cleaned := cleanPhoneNumber(raw)
	if cleaned == "" {
		return PhoneNumber{}, ErrPhoneNumberEmpty
	}

	if !phoneRegex.MatchString(cleaned) {
		return PhoneNumber{}, &InvalidPhoneNumberError{Input: raw}
	}

	return PhoneNumber{value: cleaned}, nil
}

// cleanPhoneNumber removes every character except ASCII digits and "+".
func cleanPhoneNumber(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Value returns the cleaned digit form.
func (p PhoneNumber) Value() string {
	return p.value
}

// Formatted renders the number for display. International numbers (leading
// "+") are shown unformatted, exactly 10-digit numbers as (AAA) BBB-CCCC,
// and anything else as-is.
func (p PhoneNumber) Formatted() string {
	if strings.HasPrefix(p.value, "+") {
		return p.value
	}
	if len(p.value) == 10 {
		return fmt.Sprintf("(%s) %s-%s", p.value[0:3], p.value[3:6], p.value[6:10])
	}
	return p.value
}

func (p PhoneNumber) String() string {
	return p.Formatted()
}
