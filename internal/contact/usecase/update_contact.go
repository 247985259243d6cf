package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/allisson/phonebook/internal/contact/domain"
	apperrors "github.com/allisson/phonebook/internal/errors"
)

// UpdateContactRequest contains the changes to apply to a contact. Nil
// pointer fields are left untouched; the add/remove lists are applied as
// idempotent set operations.
type UpdateContactRequest struct {
	ContactID          domain.ContactID
	FirstName          *string
	LastName           *string
	Notes              *string
	AddPhoneNumbers    []domain.PhoneNumber
	RemovePhoneNumbers []domain.PhoneNumber
	AddEmails          []domain.Email
	RemoveEmails       []domain.Email
	AddTags            []string
	RemoveTags         []string
}

// UpdateContactResponse contains the fully updated contact.
type UpdateContactResponse struct {
	Contact *domain.Contact
	Message string
}

// UpdateContactUseCase applies partial updates to existing contacts.
type UpdateContactUseCase struct {
	contactRepo ContactRepository
}

// NewUpdateContactUseCase creates a new update contact use case instance.
func NewUpdateContactUseCase(contactRepo ContactRepository) *UpdateContactUseCase {
	return &UpdateContactUseCase{contactRepo: contactRepo}
}

// Execute loads the contact, applies every change to the in-memory copy,
// re-validates the at-least-one-contact-method invariant, and only then
// issues the single repository update. A failing invariant check therefore
// never persists a partial apply.
func (u *UpdateContactUseCase) Execute(ctx context.Context, req UpdateContactRequest) (*UpdateContactResponse, error) {
	contact, err := u.contactRepo.FindByID(ctx, req.ContactID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, apperrors.Wrap(domain.ErrContactNotFound, fmt.Sprintf("contact %s", req.ContactID))
	}

	if req.FirstName != nil {
		if strings.TrimSpace(*req.FirstName) == "" {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "first name cannot be empty")
		}
		contact.SetFirstName(*req.FirstName)
	}

	if req.LastName != nil {
		if strings.TrimSpace(*req.LastName) == "" {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "last name cannot be empty")
		}
		contact.SetLastName(*req.LastName)
	}

	if req.Notes != nil {
		// Blank notes clear the field rather than storing whitespace.
		if strings.TrimSpace(*req.Notes) == "" {
			contact.SetNotes("")
		} else {
			contact.SetNotes(*req.Notes)
		}
	}

	for _, phone := range req.AddPhoneNumbers {
		contact.AddPhoneNumber(phone)
	}
	for _, phone := range req.RemovePhoneNumbers {
		contact.RemovePhoneNumber(phone)
	}

	for _, email := range req.AddEmails {
		contact.AddEmail(email)
	}
	for _, email := range req.RemoveEmails {
		contact.RemoveEmail(email)
	}

	for _, tag := range req.AddTags {
		contact.AddTag(tag)
	}
	for _, tag := range req.RemoveTags {
		contact.RemoveTag(tag)
	}

	if len(contact.PhoneNumbers()) == 0 && len(contact.Emails()) == 0 {
		return nil, apperrors.Wrap(
			apperrors.ErrInvalidInput,
			"contact must have at least one phone number or email",
		)
	}

	if err := u.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}

	return &UpdateContactResponse{
		Contact: contact,
		Message: "Contact updated successfully",
	}, nil
}
