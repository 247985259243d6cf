package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/phonebook/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ContactsFile:    filepath.Join(t.TempDir(), "contacts.json"),
		LogLevel:        "info",
		ListPageSize:    10,
		ListMaxPageSize: 100,
	}
}

func TestContainer(t *testing.T) {
	t.Run("Config", func(t *testing.T) {
		cfg := testConfig(t)
		container := NewContainer(cfg)

		assert.Same(t, cfg, container.Config())
	})

	t.Run("Logger_SameInstanceOnRepeatedAccess", func(t *testing.T) {
		container := NewContainer(testConfig(t))

		logger := container.Logger()
		require.NotNil(t, logger)
		assert.Same(t, logger, container.Logger())
	})

	t.Run("ContactRepository_SameInstanceOnRepeatedAccess", func(t *testing.T) {
		container := NewContainer(testConfig(t))

		repo := container.ContactRepository()
		require.NotNil(t, repo)
		assert.Same(t, repo, container.ContactRepository())
	})

	t.Run("ContactService_SameInstanceOnRepeatedAccess", func(t *testing.T) {
		container := NewContainer(testConfig(t))

		service := container.ContactService()
		require.NotNil(t, service)
		assert.Same(t, service, container.ContactService())
	})

	t.Run("Shutdown", func(t *testing.T) {
		container := NewContainer(testConfig(t))
		container.ContactService()

		assert.NoError(t, container.Shutdown(context.Background()))
	})
}
