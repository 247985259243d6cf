package usecase

import (
	"context"

	validation "github.com/jellydator/validation"

	"github.com/allisson/phonebook/internal/contact/domain"
	appValidation "github.com/allisson/phonebook/internal/validation"
)

// SearchContactsRequest contains the substring query.
type SearchContactsRequest struct {
	Query string
}

// Validate rejects blank or oversized queries before the repository is
// touched.
func (r *SearchContactsRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Query,
			validation.Required.Error("search query cannot be empty"),
			appValidation.NotBlank,
			validation.RuneLength(1, 200).Error("search query cannot exceed 200 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// SearchContactsResponse contains every matching contact plus the echoed
// query.
type SearchContactsResponse struct {
	Contacts []*domain.Contact
	Query    string
	Count    int
}

// SearchContactsUseCase searches contacts by substring.
type SearchContactsUseCase struct {
	contactRepo ContactRepository
}

// NewSearchContactsUseCase creates a new search contacts use case instance.
func NewSearchContactsUseCase(contactRepo ContactRepository) *SearchContactsUseCase {
	return &SearchContactsUseCase{contactRepo: contactRepo}
}

// Execute validates the query and returns all matching contacts.
func (u *SearchContactsUseCase) Execute(ctx context.Context, req SearchContactsRequest) (*SearchContactsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contacts, err := u.contactRepo.Search(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	return &SearchContactsResponse{
		Contacts: contacts,
		Query:    req.Query,
		Count:    len(contacts),
	}, nil
}
