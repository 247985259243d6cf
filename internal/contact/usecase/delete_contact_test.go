package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/phonebook/internal/contact/domain"
	"github.com/allisson/phonebook/internal/contact/repository"
	"github.com/allisson/phonebook/internal/errors"
)

func TestDeleteContactUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DeleteContact", func(t *testing.T) {
		repo := repository.NewMemoryContactRepository()
		contact := newTestContact(t, "Ada", "Lovelace")
		require.NoError(t, repo.Save(ctx, contact))

		uc := NewDeleteContactUseCase(repo)
		output, err := uc.Execute(ctx, DeleteContactRequest{ContactID: contact.ID()})

		require.NoError(t, err)
		assert.Equal(t, contact.ID(), output.ContactID)
		assert.Equal(t, "Contact deleted successfully", output.Message)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("Error_ContactNotFoundLeavesStoreUnchanged", func(t *testing.T) {
		repo := repository.NewMemoryContactRepository()
		contact := newTestContact(t, "Ada", "Lovelace")
		require.NoError(t, repo.Save(ctx, contact))

		uc := NewDeleteContactUseCase(repo)
		output, err := uc.Execute(ctx, DeleteContactRequest{ContactID: domain.NewContactID()})

		assert.Nil(t, output)
		assert.ErrorIs(t, err, errors.ErrNotFound)

		count, countErr := repo.Count(ctx)
		require.NoError(t, countErr)
		assert.Equal(t, 1, count)
	})
}
