package usecase

import (
	"context"
)

// ContactService is a façade exposing every contact use case through one
// handle. All use cases share the same repository; the service adds no
// behavior of its own.
type ContactService struct {
	addContact     *AddContactUseCase
	findContact    *FindContactUseCase
	updateContact  *UpdateContactUseCase
	deleteContact  *DeleteContactUseCase
	listContacts   *ListContactsUseCase
	searchContacts *SearchContactsUseCase
	contactStats   *ContactStatsUseCase
}

// NewContactService creates the façade over a shared repository.
func NewContactService(contactRepo ContactRepository) *ContactService {
	return &ContactService{
		addContact:     NewAddContactUseCase(contactRepo),
		findContact:    NewFindContactUseCase(contactRepo),
		updateContact:  NewUpdateContactUseCase(contactRepo),
		deleteContact:  NewDeleteContactUseCase(contactRepo),
		listContacts:   NewListContactsUseCase(contactRepo),
		searchContacts: NewSearchContactsUseCase(contactRepo),
		contactStats:   NewContactStatsUseCase(contactRepo),
	}
}

// AddContact creates a new contact.
func (s *ContactService) AddContact(ctx context.Context, req AddContactRequest) (*AddContactResponse, error) {
	return s.addContact.Execute(ctx, req)
}

// FindContact retrieves a contact by ID.
func (s *ContactService) FindContact(ctx context.Context, req FindContactRequest) (*FindContactResponse, error) {
	return s.findContact.Execute(ctx, req)
}

// UpdateContact applies a partial update to a contact.
func (s *ContactService) UpdateContact(ctx context.Context, req UpdateContactRequest) (*UpdateContactResponse, error) {
	return s.updateContact.Execute(ctx, req)
}

// DeleteContact removes a contact.
func (s *ContactService) DeleteContact(ctx context.Context, req DeleteContactRequest) (*DeleteContactResponse, error) {
	return s.deleteContact.Execute(ctx, req)
}

// ListContacts returns a sorted, paginated page of contacts.
func (s *ContactService) ListContacts(ctx context.Context, req ListContactsRequest) (*ListContactsResponse, error) {
	return s.listContacts.Execute(ctx, req)
}

// SearchContacts returns every contact matching a query.
func (s *ContactService) SearchContacts(ctx context.Context, req SearchContactsRequest) (*SearchContactsResponse, error) {
	return s.searchContacts.Execute(ctx, req)
}

// ContactStats returns aggregate statistics over the stored set.
func (s *ContactService) ContactStats(ctx context.Context) (*ContactStatsResponse, error) {
	return s.contactStats.Execute(ctx)
}
