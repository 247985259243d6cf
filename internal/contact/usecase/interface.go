// Package usecase implements the application operations for the phonebook:
// one use case per operation plus the ContactService façade that aggregates
// them over a shared repository.
package usecase

import (
	"context"

	"github.com/allisson/phonebook/internal/contact/domain"
)

// ContactRepository defines the persistence contract the use cases depend
// on. It is the single seam for substituting storage backends.
type ContactRepository interface {
	// Save inserts a new contact, failing with domain.ErrContactAlreadyExists
	// when the ID is already present.
	Save(ctx context.Context, contact *domain.Contact) error
	// FindByID returns the contact or nil when absent; absence is a normal
	// outcome, not an error.
	FindByID(ctx context.Context, id domain.ContactID) (*domain.Contact, error)
	// FindAll returns every contact, unordered as stored.
	FindAll(ctx context.Context) ([]*domain.Contact, error)
	// Update replaces a stored contact wholesale, failing with
	// domain.ErrContactNotFound when the ID is absent.
	Update(ctx context.Context, contact *domain.Contact) error
	// Delete removes a contact, failing with domain.ErrContactNotFound when
	// the ID is absent.
	Delete(ctx context.Context, id domain.ContactID) error
	// Search returns every contact matching the query. Rejecting an empty
	// query is the caller's responsibility.
	Search(ctx context.Context, query string) ([]*domain.Contact, error)
	// Exists reports whether a contact with the ID is stored.
	Exists(ctx context.Context, id domain.ContactID) (bool, error)
	// Count returns the number of stored contacts.
	Count(ctx context.Context) (int, error)
}
