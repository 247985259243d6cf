// Package domain defines the contact aggregate and its validated value objects.
//
// Value objects (ContactID, Email, PhoneNumber) are self-validating: a live
// value always satisfies its grammar, so the rest of the system never handles
// partially-valid input. The Contact entity keeps its fields unexported so the
// set-like semantics of its collections cannot be bypassed.
package domain

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Contact is the aggregate record for one person: identity, validated contact
// methods, and free-form metadata.
type Contact struct {
	id           ContactID
	firstName    string
	lastName     string
	phoneNumbers []PhoneNumber
	emails       []Email
	notes        string
	tags         []string
	metadata     map[string]string
}

// NewContact creates a contact with a fresh random ID and empty notes, tags
// and metadata.
func NewContact(firstName, lastName string, phoneNumbers []PhoneNumber, emails []Email) *Contact {
	return &Contact{
		id:           NewContactID(),
		firstName:    firstName,
		lastName:     lastName,
		phoneNumbers: slices.Clone(phoneNumbers),
		emails:       slices.Clone(emails),
		metadata:     make(map[string]string),
	}
}

// RestoreContact reconstructs a contact with a known ID, for loading from
// storage.
func RestoreContact(
	id ContactID,
	firstName, lastName string,
	phoneNumbers []PhoneNumber,
	emails []Email,
	notes string,
	tags []string,
	metadata map[string]string,
) *Contact {
	c := &Contact{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		phoneNumbers: slices.Clone(phoneNumbers),
		emails:       slices.Clone(emails),
		notes:        notes,
		tags:         slices.Clone(tags),
		metadata:     maps.Clone(metadata),
	}
	if c.metadata == nil {
		c.metadata = make(map[string]string)
	}
	return c
}

// ID returns the immutable contact identifier.
func (c *Contact) ID() ContactID {
	return c.id
}

// FirstName returns the contact's first name.
func (c *Contact) FirstName() string {
	return c.firstName
}

// LastName returns the contact's last name.
func (c *Contact) LastName() string {
	return c.lastName
}

// FullName returns "first last". It is derived, never stored.
func (c *Contact) FullName() string {
	return fmt.Sprintf("%s %s", c.firstName, c.lastName)
}

// PhoneNumbers returns a copy of the phone number list in insertion order.
func (c *Contact) PhoneNumbers() []PhoneNumber {
	return slices.Clone(c.phoneNumbers)
}

// Emails returns a copy of the email list in insertion order.
func (c *Contact) Emails() []Email {
	return slices.Clone(c.emails)
}

// Notes returns the free-form notes, empty when unset.
func (c *Contact) Notes() string {
	return c.notes
}

// Tags returns a copy of the tag list in insertion order.
func (c *Contact) Tags() []string {
	return slices.Clone(c.tags)
}

// Metadata returns a copy of the metadata mapping.
func (c *Contact) Metadata() map[string]string {
	return maps.Clone(c.metadata)
}

// SetFirstName replaces the first name.
func (c *Contact) SetFirstName(firstName string) {
	c.firstName = firstName
}

// SetLastName replaces the last name.
func (c *Contact) SetLastName(lastName string) {
	c.lastName = lastName
}

// SetNotes replaces the notes. An empty string clears them.
func (c *Contact) SetNotes(notes string) {
	c.notes = notes
}

// AddPhoneNumber appends a phone number; adding an existing one is a no-op.
func (c *Contact) AddPhoneNumber(phone PhoneNumber) {
	if !slices.Contains(c.phoneNumbers, phone) {
		c.phoneNumbers = append(c.phoneNumbers, phone)
	}
}

// RemovePhoneNumber removes a phone number; removing a non-member is a no-op.
func (c *Contact) RemovePhoneNumber(phone PhoneNumber) {
	c.phoneNumbers = slices.DeleteFunc(c.phoneNumbers, func(p PhoneNumber) bool {
		return p == phone
	})
}

// AddEmail appends an email; adding an existing one is a no-op.
func (c *Contact) AddEmail(email Email) {
	if !slices.Contains(c.emails, email) {
		c.emails = append(c.emails, email)
	}
}

// RemoveEmail removes an email; removing a non-member is a no-op.
func (c *Contact) RemoveEmail(email Email) {
	c.emails = slices.DeleteFunc(c.emails, func(e Email) bool {
		return e == email
	})
}

// AddTag appends a tag; adding an existing one is a no-op.
func (c *Contact) AddTag(tag string) {
	if !slices.Contains(c.tags, tag) {
		c.tags = append(c.tags, tag)
	}
}

// RemoveTag removes a tag; removing a non-member is a no-op.
func (c *Contact) RemoveTag(tag string) {
	c.tags = slices.DeleteFunc(c.tags, func(t string) bool {
		return t == tag
	})
}

// SetMetadata sets a metadata key to a value, replacing any existing value.
func (c *Contact) SetMetadata(key, value string) {
	c.metadata[key] = value
}

// RemoveMetadata removes a metadata key; removing a non-member is a no-op.
func (c *Contact) RemoveMetadata(key string) {
	delete(c.metadata, key)
}

// MatchesSearch reports whether the query is a case-insensitive substring of
// the contact's names, phone values, email values, notes or tags.
func (c *Contact) MatchesSearch(query string) bool {
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(c.firstName), q) ||
		strings.Contains(strings.ToLower(c.lastName), q) {
		return true
	}
	for _, phone := range c.phoneNumbers {
		if strings.Contains(phone.Value(), q) {
			return true
		}
	}
	for _, email := range c.emails {
		if strings.Contains(email.Value(), q) {
			return true
		}
	}
	if c.notes != "" && strings.Contains(strings.ToLower(c.notes), q) {
		return true
	}
	for _, tag := range c.tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the contact.
func (c *Contact) Clone() *Contact {
	return RestoreContact(
		c.id,
		c.firstName,
		c.lastName,
		c.phoneNumbers,
		c.emails,
		c.notes,
		c.tags,
		c.metadata,
	)
}

// contactDocument is the serialized form of a contact. Value objects are
// stored in their canonical post-validation string forms.
type contactDocument struct {
	ID           string            `json:"id"`
	FirstName    string            `json:"first_name"`
	LastName     string            `json:"last_name"`
	PhoneNumbers []string          `json:"phone_numbers"`
	Emails       []string          `json:"emails"`
	Notes        *string           `json:"notes"`
	Tags         []string          `json:"tags"`
	Metadata     map[string]string `json:"metadata"`
}

// MarshalJSON serializes the contact using canonical value-object forms.
func (c *Contact) MarshalJSON() ([]byte, error) {
	doc := contactDocument{
		ID:           c.id.String(),
		FirstName:    c.firstName,
		LastName:     c.lastName,
		PhoneNumbers: make([]string, 0, len(c.phoneNumbers)),
		Emails:       make([]string, 0, len(c.emails)),
		Tags:         slices.Clone(c.tags),
		Metadata:     maps.Clone(c.metadata),
	}
	for _, phone := range c.phoneNumbers {
		doc.PhoneNumbers = append(doc.PhoneNumbers, phone.Value())
	}
	for _, email := range c.emails {
		doc.Emails = append(doc.Emails, email.Value())
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	if doc.Metadata == nil {
		doc.Metadata = map[string]string{}
	}
	if c.notes != "" {
		doc.Notes = &c.notes
	}
	return json.Marshal(doc)
}

// UnmarshalJSON reconstructs a contact, re-running value-object validation so
// malformed stored data fails the load instead of producing invalid values.
func (c *Contact) UnmarshalJSON(data []byte) error {
	var doc contactDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	id, err := ParseContactID(doc.ID)
	if err != nil {
		return err
	}

	phones := make([]PhoneNumber, 0, len(doc.PhoneNumbers))
	for _, raw := range doc.PhoneNumbers {
		phone, err := NewPhoneNumber(raw)
		if err != nil {
			return err
		}
		phones = append(phones, phone)
	}

	emails := make([]Email, 0, len(doc.Emails))
	for _, raw := range doc.Emails {
		email, err := NewEmail(raw)
		if err != nil {
			return err
		}
		emails = append(emails, email)
	}

	var notes string
	if doc.Notes != nil {
		notes = *doc.Notes
	}

	*c = *RestoreContact(id, doc.FirstName, doc.LastName, phones, emails, notes, doc.Tags, doc.Metadata)
	return nil
}
