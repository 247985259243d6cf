package usecase

import (
	"context"
)

// ContactStatsResponse contains aggregate figures over the stored set.
type ContactStatsResponse struct {
	TotalContacts int
}

// ContactStatsUseCase reports aggregate statistics.
type ContactStatsUseCase struct {
	contactRepo ContactRepository
}

// NewContactStatsUseCase creates a new contact stats use case instance.
func NewContactStatsUseCase(contactRepo ContactRepository) *ContactStatsUseCase {
	return &ContactStatsUseCase{contactRepo: contactRepo}
}

// Execute returns the total contact count.
func (u *ContactStatsUseCase) Execute(ctx context.Context) (*ContactStatsResponse, error) {
	count, err := u.contactRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &ContactStatsResponse{TotalContacts: count}, nil
}
