package domain

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/allisson/phonebook/internal/errors"
)

// ContactID is the opaque unique identifier for a contact. It wraps a random
// 128-bit UUID and is the sole lookup and equality key for a contact.
type ContactID struct {
	value uuid.UUID
}

// NewContactID creates a fresh random contact ID.
func NewContactID() ContactID {
	return ContactID{value: uuid.New()}
}

// ContactIDFromUUID creates a contact ID from an existing UUID.
func ContactIDFromUUID(id uuid.UUID) ContactID {
	return ContactID{value: id}
}

// ParseContactID parses the canonical string form of a contact ID.
func ParseContactID(s string) (ContactID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ContactID{}, errors.Wrap(errors.ErrInvalidInput, fmt.Sprintf("invalid contact ID: %s", s))
	}
	return ContactID{value: id}, nil
}

// UUID returns the inner UUID.
func (id ContactID) UUID() uuid.UUID {
	return id.value
}

// String returns the canonical string form.
func (id ContactID) String() string {
	return id.value.String()
}
