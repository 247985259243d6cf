package usecase

import (
	"context"

	validation "github.com/jellydator/validation"

	"github.com/allisson/phonebook/internal/contact/domain"
	apperrors "github.com/allisson/phonebook/internal/errors"
	appValidation "github.com/allisson/phonebook/internal/validation"
)

// AddContactRequest contains the input data for creating a contact.
// Phone numbers and emails arrive already validated as value objects.
type AddContactRequest struct {
	FirstName    string
	LastName     string
	PhoneNumbers []domain.PhoneNumber
	Emails       []domain.Email
	Notes        string
	Tags         []string
}

// Validate checks the request. Name rules are format validation; the
// at-least-one-contact-method rule is a business rule, reported after the
// format checks pass.
func (r *AddContactRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			appValidation.NotBlank,
			validation.RuneLength(1, 100).Error("first name must be between 1 and 100 characters"),
			appValidation.NoControlChars,
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			appValidation.NotBlank,
			validation.RuneLength(1, 100).Error("last name must be between 1 and 100 characters"),
			appValidation.NoControlChars,
		),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	if len(r.PhoneNumbers) == 0 && len(r.Emails) == 0 {
		return apperrors.Wrap(
			apperrors.ErrInvalidInput,
			"at least one phone number or email address is required",
		)
	}

	return nil
}

// AddContactResponse contains the result of creating a contact.
type AddContactResponse struct {
	ContactID domain.ContactID
	Message   string
}

// AddContactUseCase creates new contacts.
type AddContactUseCase struct {
	contactRepo ContactRepository
}

// NewAddContactUseCase creates a new add contact use case instance.
func NewAddContactUseCase(contactRepo ContactRepository) *AddContactUseCase {
	return &AddContactUseCase{contactRepo: contactRepo}
}

// Execute validates the request, creates the contact with a fresh ID and
// saves it.
func (u *AddContactUseCase) Execute(ctx context.Context, req AddContactRequest) (*AddContactResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contact := domain.NewContact(req.FirstName, req.LastName, req.PhoneNumbers, req.Emails)
	if req.Notes != "" {
		contact.SetNotes(req.Notes)
	}
	for _, tag := range req.Tags {
		contact.AddTag(tag)
	}

	if err := u.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}

	return &AddContactResponse{
		ContactID: contact.ID(),
		Message:   "Contact added successfully",
	}, nil
}
