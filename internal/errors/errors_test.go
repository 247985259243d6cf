package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("wraps error with context", func(t *testing.T) {
		err := Wrap(ErrNotFound, "contact lookup failed")
		require.Error(t, err)
		assert.Equal(t, "contact lookup failed: not found", err.Error())
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "ignored"))
	})

	t.Run("preserves chain through multiple wraps", func(t *testing.T) {
		err := Wrap(Wrap(ErrConflict, "inner"), "outer")
		assert.True(t, errors.Is(err, ErrConflict))
		assert.Equal(t, "outer: inner: conflict", err.Error())
	})
}

func TestIs(t *testing.T) {
	err := Wrap(ErrInvalidInput, "bad phone")
	assert.True(t, Is(err, ErrInvalidInput))
	assert.False(t, Is(err, ErrNotFound))
}

func TestNew(t *testing.T) {
	err := New("boom")
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
}
