package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunAddContact(t *testing.T) {
	ctx := context.Background()
	logger := testLogger()

	t.Run("success", func(t *testing.T) {
		service := newTestService()
		ioTuple, out := testIO("")

		err := RunAddContact(
			ctx, service, logger,
			"Ada", "Lovelace",
			[]string{"(555) 010-1842"},
			[]string{"ada@analytical.engine"},
			"first programmer",
			[]string{"mathematician"},
			ioTuple,
		)

		require.NoError(t, err)
		require.Contains(t, out.String(), "✓ Contact added successfully")
		require.Contains(t, out.String(), "Contact ID: ")
	})

	t.Run("invalid phone number", func(t *testing.T) {
		service := newTestService()
		ioTuple, out := testIO("")

		err := RunAddContact(
			ctx, service, logger,
			"Ada", "Lovelace",
			[]string{"bogus"},
			nil,
			"", nil,
			ioTuple,
		)

		require.Error(t, err)
		require.Contains(t, err.Error(), `invalid phone number "bogus"`)
		require.Empty(t, out.String())
	})

	t.Run("no contact method", func(t *testing.T) {
		service := newTestService()
		ioTuple, _ := testIO("")

		err := RunAddContact(
			ctx, service, logger,
			"Ada", "Lovelace",
			nil, nil,
			"", nil,
			ioTuple,
		)

		require.Error(t, err)
		require.Contains(t, err.Error(), "at least one phone number or email address is required")
	})
}
