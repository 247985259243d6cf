package commands

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRunUpdateContact(t *testing.T) {
	ctx := context.Background()
	logger := testLogger()

	newName := "Augusta"

	t.Run("success", func(t *testing.T) {
		service := newTestService()
		id := seedContact(t, service, "Ada", "Lovelace", "5550101842", "ada@analytical.engine")
		ioTuple, out := testIO("")

		err := RunUpdateContact(ctx, service, logger, UpdateContactOptions{
			ID:        id,
			FirstName: &newName,
			AddPhones: []string{"5559876543"},
			AddTags:   []string{"mathematician"},
		}, ioTuple)

		require.NoError(t, err)
		require.Contains(t, out.String(), "✓ Contact updated successfully")

		findIO, findOut := testIO("")
		require.NoError(t, RunFindContact(ctx, service, logger, id, findIO))
		require.Contains(t, findOut.String(), "Augusta Lovelace")
		require.Contains(t, findOut.String(), "mathematician")
	})

	t.Run("contact not found", func(t *testing.T) {
		service := newTestService()
		ioTuple, _ := testIO("")

		err := RunUpdateContact(ctx, service, logger, UpdateContactOptions{
			ID:        uuid.NewString(),
			FirstName: &newName,
		}, ioTuple)

		require.Error(t, err)
		require.Contains(t, err.Error(), "contact not found")
	})

	t.Run("invalid phone number to add", func(t *testing.T) {
		service := newTestService()
		id := seedContact(t, service, "Ada", "Lovelace", "5550101842", "ada@analytical.engine")
		ioTuple, _ := testIO("")

		err := RunUpdateContact(ctx, service, logger, UpdateContactOptions{
			ID:        id,
			AddPhones: []string{"bogus"},
		}, ioTuple)

		require.Error(t, err)
		require.Contains(t, err.Error(), `invalid phone number "bogus"`)
	})

	t.Run("removing last contact method", func(t *testing.T) {
		service := newTestService()
		id := seedContact(t, service, "Ada", "Lovelace", "5550101842", "ada@analytical.engine")
		ioTuple, _ := testIO("")

		err := RunUpdateContact(ctx, service, logger, UpdateContactOptions{
			ID:           id,
			RemovePhones: []string{"5550101842"},
			RemoveEmails: []string{"ada@analytical.engine"},
		}, ioTuple)

		require.Error(t, err)
		require.Contains(t, err.Error(), "contact must have at least one phone number or email")
	})
}
