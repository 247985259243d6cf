package usecase

import (
	"context"
	"slices"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/phonebook/internal/contact/domain"
	appValidation "github.com/allisson/phonebook/internal/validation"
)

// SortBy selects the contact field used for list ordering.
type SortBy string

// Sorting options for contact listings.
const (
	SortByFirstName SortBy = "first-name"
	SortByLastName  SortBy = "last-name"
	SortByFullName  SortBy = "full-name"
)

// ParseSortBy converts a sort field string to a SortBy value.
func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(s) {
	case SortByFirstName, SortByLastName, SortByFullName:
		return SortBy(s), nil
	default:
		return "", validation.NewError(
			"validation_sort_by",
			"sort field must be one of: first-name, last-name, full-name",
		)
	}
}

// ListContactsRequest contains paging and ordering parameters. Page is
// zero-based.
type ListContactsRequest struct {
	Page     int
	PageSize int
	SortBy   SortBy
	Reverse  bool
}

// Validate checks the paging and ordering parameters.
func (r *ListContactsRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Page,
			validation.Min(0).Error("page must not be negative"),
		),
		validation.Field(&r.PageSize,
			validation.Required.Error("page size must be greater than 0"),
			validation.Min(1).Error("page size must be greater than 0"),
			validation.Max(100).Error("page size cannot exceed 100"),
		),
		validation.Field(&r.SortBy,
			validation.Required.Error("sort field is required"),
			validation.In(SortByFirstName, SortByLastName, SortByFullName).
				Error("sort field must be one of: first-name, last-name, full-name"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ListContactsResponse contains one page of contacts plus paging metadata.
type ListContactsResponse struct {
	Contacts   []*domain.Contact
	TotalCount int
	Page       int
	PageSize   int
	HasMore    bool
}

// ListContactsUseCase lists contacts with sorting and pagination.
type ListContactsUseCase struct {
	contactRepo ContactRepository
}

// NewListContactsUseCase creates a new list contacts use case instance.
func NewListContactsUseCase(contactRepo ContactRepository) *ListContactsUseCase {
	return &ListContactsUseCase{contactRepo: contactRepo}
}

// Execute sorts the full contact set and returns the requested page.
// The sort is stable and Reverse flips the slice after sorting, so ties keep
// their relative order in descending display as well. A page past the end
// yields an empty page, not an error.
func (u *ListContactsUseCase) Execute(ctx context.Context, req ListContactsRequest) (*ListContactsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contacts, err := u.contactRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	key := sortKey(req.SortBy)
	slices.SortStableFunc(contacts, func(a, b *domain.Contact) int {
		return strings.Compare(key(a), key(b))
	})

	if req.Reverse {
		slices.Reverse(contacts)
	}

	totalCount := len(contacts)
	start := req.Page * req.PageSize
	end := min(start+req.PageSize, totalCount)

	page := []*domain.Contact{}
	if start < totalCount {
		page = contacts[start:end]
	}

	return &ListContactsResponse{
		Contacts:   page,
		TotalCount: totalCount,
		Page:       req.Page,
		PageSize:   req.PageSize,
		HasMore:    end < totalCount,
	}, nil
}

// sortKey returns the comparison key extractor for a sort field.
func sortKey(sortBy SortBy) func(*domain.Contact) string {
	switch sortBy {
	case SortByFirstName:
		return (*domain.Contact).FirstName
	case SortByLastName:
		return (*domain.Contact).LastName
	default:
		return (*domain.Contact).FullName
	}
}
