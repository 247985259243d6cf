package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/phonebook/internal/contact/repository"
	"github.com/allisson/phonebook/internal/errors"
)

func TestContactStatsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CountsStoredContacts", func(t *testing.T) {
		repo := repository.NewMemoryContactRepository()
		require.NoError(t, repo.Save(ctx, newTestContact(t, "Ada", "Lovelace")))
		require.NoError(t, repo.Save(ctx, newTestContact(t, "Grace", "Hopper")))

		uc := NewContactStatsUseCase(repo)
		output, err := uc.Execute(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, output.TotalContacts)
	})

	t.Run("Success_EmptyStore", func(t *testing.T) {
		uc := NewContactStatsUseCase(repository.NewMemoryContactRepository())

		output, err := uc.Execute(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, output.TotalContacts)
	})

	t.Run("Error_RepositoryFails", func(t *testing.T) {
		mockRepo := &mockContactRepository{}
		repoErr := errors.New("read failed")
		mockRepo.On("Count", ctx).Return(0, repoErr).Once()

		uc := NewContactStatsUseCase(mockRepo)
		output, err := uc.Execute(ctx)

		assert.Nil(t, output)
		assert.ErrorIs(t, err, repoErr)
		mockRepo.AssertExpectations(t)
	})
}
