// Package repository provides persistence implementations for the contact
// repository contract defined by the use case layer.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/allisson/phonebook/internal/contact/domain"
	"github.com/allisson/phonebook/internal/errors"
)

// Storage failure sentinels. Both are fatal for the operation in progress;
// nothing retries them.
var (
	// ErrStorage indicates the backing file could not be read or written.
	ErrStorage = errors.New("storage error")

	// ErrSerialization indicates the backing file holds data that cannot be
	// decoded into contacts.
	ErrSerialization = errors.New("serialization error")
)

// storeDocument is the entire persisted state: one JSON object mapping
// canonical contact-id strings to contact records.
type storeDocument struct {
	Contacts map[string]*domain.Contact `json:"contacts"`
}

// FileContactRepository persists contacts to a single JSON document and
// serves reads from an in-memory cache. The cache is populated lazily on
// first access and stays authoritative for the process lifetime; every
// mutation rewrites the whole document. One mutex serializes all access.
// Concurrent processes are not coordinated.
type FileContactRepository struct {
	path string

	mu       sync.Mutex
	contacts map[domain.ContactID]*domain.Contact
	loaded   bool
}

// NewFileContactRepository creates a repository backed by the JSON document
// at path. The file is not touched until the first operation.
func NewFileContactRepository(path string) *FileContactRepository {
	return &FileContactRepository{path: path}
}

// ensureLoaded populates the cache from disk on first access.
// The caller must hold r.mu.
func (r *FileContactRepository) ensureLoaded() error {
	if r.loaded {
		return nil
	}

	contacts, err := r.loadContacts()
	if err != nil {
		return err
	}

	r.contacts = contacts
	r.loaded = true
	return nil
}

// loadContacts reads and decodes the whole document. A missing or blank file
// yields an empty set; anything undecodable is a serialization error.
func (r *FileContactRepository) loadContacts() (map[domain.ContactID]*domain.Contact, error) {
	content, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[domain.ContactID]*domain.Contact), nil
		}
		return nil, fmt.Errorf("%w: failed to read contacts file: %v", ErrStorage, err)
	}

	if strings.TrimSpace(string(content)) == "" {
		return make(map[domain.ContactID]*domain.Contact), nil
	}

	var doc storeDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode contacts file: %v", ErrSerialization, err)
	}

	contacts := make(map[domain.ContactID]*domain.Contact, len(doc.Contacts))
	for idStr, contact := range doc.Contacts {
		id, err := domain.ParseContactID(idStr)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid contact ID in contacts file: %s", ErrSerialization, idStr)
		}
		contacts[id] = contact
	}

	return contacts, nil
}

// persist rewrites the entire document from the cache, going through a
// temporary file and a rename so an interrupted write never truncates the
// existing document. The caller must hold r.mu.
func (r *FileContactRepository) persist() error {
	doc := storeDocument{Contacts: make(map[string]*domain.Contact, len(r.contacts))}
	for id, contact := range r.contacts {
		doc.Contacts[id.String()] = contact
	}

	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to encode contacts: %v", ErrSerialization, err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: failed to create temporary file: %v", ErrStorage, err)
	}

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: failed to write contacts file: %v", ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: failed to write contacts file: %v", ErrStorage, err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: failed to replace contacts file: %v", ErrStorage, err)
	}

	return nil
}

// Save inserts a new contact, failing when the ID is already present.
func (r *FileContactRepository) Save(ctx context.Context, contact *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return err
	}

	id := contact.ID()
	if _, ok := r.contacts[id]; ok {
		return errors.Wrap(domain.ErrContactAlreadyExists, fmt.Sprintf("contact %s", id))
	}

	r.contacts[id] = contact.Clone()
	return r.persist()
}

// FindByID returns a copy of the contact, or nil when absent. Absence is a
// normal outcome, not an error.
func (r *FileContactRepository) FindByID(ctx context.Context, id domain.ContactID) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}

	contact, ok := r.contacts[id]
	if !ok {
		return nil, nil
	}
	return contact.Clone(), nil
}

// FindAll returns copies of every contact, unordered as stored.
func (r *FileContactRepository) FindAll(ctx context.Context) ([]*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}

	contacts := make([]*domain.Contact, 0, len(r.contacts))
	for _, contact := range r.contacts {
		contacts = append(contacts, contact.Clone())
	}
	return contacts, nil
}

// Update replaces a stored contact wholesale, failing when the ID is absent.
// The existence check and the replacement happen under one lock acquisition.
func (r *FileContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return err
	}

	id := contact.ID()
	if _, ok := r.contacts[id]; !ok {
		return errors.Wrap(domain.ErrContactNotFound, fmt.Sprintf("contact %s", id))
	}

	r.contacts[id] = contact.Clone()
	return r.persist()
}

// Delete removes a contact, failing when the ID is absent. The existence
// check and the removal happen under one lock acquisition.
func (r *FileContactRepository) Delete(ctx context.Context, id domain.ContactID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return err
	}

	if _, ok := r.contacts[id]; !ok {
		return errors.Wrap(domain.ErrContactNotFound, fmt.Sprintf("contact %s", id))
	}

	delete(r.contacts, id)
	return r.persist()
}

// Search returns copies of every contact matching the query.
func (r *FileContactRepository) Search(ctx context.Context, query string) ([]*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}

	var matches []*domain.Contact
	for _, contact := range r.contacts {
		if contact.MatchesSearch(query) {
			matches = append(matches, contact.Clone())
		}
	}
	return matches, nil
}

// Exists reports whether a contact with the ID is stored.
func (r *FileContactRepository) Exists(ctx context.Context, id domain.ContactID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return false, err
	}

	_, ok := r.contacts[id]
	return ok, nil
}

// Count returns the number of stored contacts.
func (r *FileContactRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return 0, err
	}

	return len(r.contacts), nil
}
