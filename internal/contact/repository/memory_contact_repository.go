package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/allisson/phonebook/internal/contact/domain"
	"github.com/allisson/phonebook/internal/errors"
)

// MemoryContactRepository keeps contacts in a mutex-guarded map with no
// persistence. It implements the same contract as the file-backed
// repository and serves as the in-process test double.
type MemoryContactRepository struct {
	mu       sync.Mutex
	contacts map[domain.ContactID]*domain.Contact
}

// NewMemoryContactRepository creates an empty in-memory repository.
func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{
		contacts: make(map[domain.ContactID]*domain.Contact),
	}
}

// Save inserts a new contact, failing when the ID is already present.
func (r *MemoryContactRepository) Save(ctx context.Context, contact *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := contact.ID()
	if _, ok := r.contacts[id]; ok {
		return errors.Wrap(domain.ErrContactAlreadyExists, fmt.Sprintf("contact %s", id))
	}

	r.contacts[id] = contact.Clone()
	return nil
}

// FindByID returns a copy of the contact, or nil when absent.
func (r *MemoryContactRepository) FindByID(ctx context.Context, id domain.ContactID) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contact, ok := r.contacts[id]
	if !ok {
		return nil, nil
	}
	return contact.Clone(), nil
}

// FindAll returns copies of every contact, unordered as stored.
func (r *MemoryContactRepository) FindAll(ctx context.Context) ([]*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contacts := make([]*domain.Contact, 0, len(r.contacts))
	for _, contact := range r.contacts {
		contacts = append(contacts, contact.Clone())
	}
	return contacts, nil
}

// Update replaces a stored contact wholesale, failing when the ID is absent.
func (r *MemoryContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := contact.ID()
	if _, ok := r.contacts[id]; !ok {
		return errors.Wrap(domain.ErrContactNotFound, fmt.Sprintf("contact %s", id))
	}

	r.contacts[id] = contact.Clone()
	return nil
}

// Delete removes a contact, failing when the ID is absent.
func (r *MemoryContactRepository) Delete(ctx context.Context, id domain.ContactID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[id]; !ok {
		return errors.Wrap(domain.ErrContactNotFound, fmt.Sprintf("contact %s", id))
	}

	delete(r.contacts, id)
	return nil
}

// Search returns copies of every contact matching the query.
func (r *MemoryContactRepository) Search(ctx context.Context, query string) ([]*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matches []*domain.Contact
	for _, contact := range r.contacts {
		if contact.MatchesSearch(query) {
			matches = append(matches, contact.Clone())
		}
	}
	return matches, nil
}

// Exists reports whether a contact with the ID is stored.
func (r *MemoryContactRepository) Exists(ctx context.Context, id domain.ContactID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.contacts[id]
	return ok, nil
}

// Count returns the number of stored contacts.
func (r *MemoryContactRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.contacts), nil
}
