package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/phonebook/internal/contact/domain"
)

func TestMemoryContactRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryContactRepository()
	contact := newTestContact(t, "Ada", "Lovelace", "5551234567")

	require.NoError(t, repo.Save(ctx, contact))
	assert.ErrorIs(t, repo.Save(ctx, contact), domain.ErrContactAlreadyExists)

	found, err := repo.FindByID(ctx, contact.ID())
	require.NoError(t, err)
	assert.Equal(t, contact, found)

	contact.SetLastName("King")
	require.NoError(t, repo.Update(ctx, contact))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "King", all[0].LastName())

	exists, err := repo.Exists(ctx, contact.ID())
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, contact.ID()))
	assert.ErrorIs(t, repo.Delete(ctx, contact.ID()), domain.ErrContactNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMemoryContactRepository_FindByIDAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryContactRepository()

	found, err := repo.FindByID(ctx, domain.NewContactID())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryContactRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryContactRepository()

	ada := newTestContact(t, "Ada", "Lovelace", "5551234567")
	ada.AddTag("mathematics")
	require.NoError(t, repo.Save(ctx, ada))

	matches, err := repo.Search(ctx, "math")
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	matches, err = repo.Search(ctx, "babbage")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMemoryContactRepository_UpdateAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryContactRepository()
	contact := newTestContact(t, "Ada", "Lovelace", "5551234567")

	assert.ErrorIs(t, repo.Update(ctx, contact), domain.ErrContactNotFound)
}
