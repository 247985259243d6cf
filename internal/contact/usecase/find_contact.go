package usecase

import (
	"context"

	"github.com/allisson/phonebook/internal/contact/domain"
)

// FindContactRequest contains the lookup key for a contact.
type FindContactRequest struct {
	ContactID domain.ContactID
}

// FindContactResponse contains the lookup result. Found is false when no
// contact has the ID; that is a normal response, not a failure.
type FindContactResponse struct {
	Contact *domain.Contact
	Found   bool
}

// FindContactUseCase retrieves contacts by ID.
type FindContactUseCase struct {
	contactRepo ContactRepository
}

// NewFindContactUseCase creates a new find contact use case instance.
func NewFindContactUseCase(contactRepo ContactRepository) *FindContactUseCase {
	return &FindContactUseCase{contactRepo: contactRepo}
}

// Execute looks up the contact by ID.
func (u *FindContactUseCase) Execute(ctx context.Context, req FindContactRequest) (*FindContactResponse, error) {
	contact, err := u.contactRepo.FindByID(ctx, req.ContactID)
	if err != nil {
		return nil, err
	}

	return &FindContactResponse{
		Contact: contact,
		Found:   contact != nil,
	}, nil
}
