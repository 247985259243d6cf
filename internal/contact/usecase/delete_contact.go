package usecase

import (
	"context"

	"github.com/allisson/phonebook/internal/contact/domain"
)

// DeleteContactRequest contains the key of the contact to remove.
type DeleteContactRequest struct {
	ContactID domain.ContactID
}

// DeleteContactResponse contains the result of a deletion.
type DeleteContactResponse struct {
	ContactID domain.ContactID
	Message   string
}

// DeleteContactUseCase removes contacts.
type DeleteContactUseCase struct {
	contactRepo ContactRepository
}

// NewDeleteContactUseCase creates a new delete contact use case instance.
func NewDeleteContactUseCase(contactRepo ContactRepository) *DeleteContactUseCase {
	return &DeleteContactUseCase{contactRepo: contactRepo}
}

// Execute deletes the contact. The repository performs the existence check
// and the removal in one critical section, so there is no window for a
// concurrent mutation between a separate exists call and the delete.
func (u *DeleteContactUseCase) Execute(ctx context.Context, req DeleteContactRequest) (*DeleteContactResponse, error) {
	if err := u.contactRepo.Delete(ctx, req.ContactID); err != nil {
		return nil, err
	}

	return &DeleteContactResponse{
		ContactID: req.ContactID,
		Message:   "Contact deleted successfully",
	}, nil
}
