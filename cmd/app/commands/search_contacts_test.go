package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunSearchContacts(t *testing.T) {
	ctx := context.Background()
	logger := testLogger()

	t.Run("matches found", func(t *testing.T) {
		service := newTestService()
		seedContact(t, service, "Ada", "Lovelace", "5550101842", "ada@analytical.engine")
		seedContact(t, service, "Grace", "Hopper", "5550000001", "grace@example.com")
		ioTuple, out := testIO("")

		err := RunSearchContacts(ctx, service, logger, "lovelace", ioTuple)

		require.NoError(t, err)
		require.Contains(t, out.String(), "Found 1 contact(s) matching 'lovelace'")
		require.Contains(t, out.String(), "Ada Lovelace")
		require.NotContains(t, out.String(), "Grace Hopper")
	})

	t.Run("no matches", func(t *testing.T) {
		service := newTestService()
		seedContact(t, service, "Ada", "Lovelace", "5550101842", "ada@analytical.engine")
		ioTuple, out := testIO("")

		err := RunSearchContacts(ctx, service, logger, "nobody", ioTuple)

		require.NoError(t, err)
		require.Contains(t, out.String(), "Found 0 contact(s) matching 'nobody'")
		require.NotContains(t, out.String(), "Name")
	})

	t.Run("blank query", func(t *testing.T) {
		service := newTestService()
		ioTuple, _ := testIO("")

		err := RunSearchContacts(ctx, service, logger, "   ", ioTuple)

		require.Error(t, err)
	})
}
