// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/phonebook/internal/config"
	"github.com/allisson/phonebook/internal/contact/repository"
	"github.com/allisson/phonebook/internal/contact/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger *slog.Logger

	// Repositories
	contactRepo usecase.ContactRepository

	// Services
	contactService *usecase.ContactService

	// Initialization flags for thread-safety
	loggerInit         sync.Once
	contactRepoInit    sync.Once
	contactServiceInit sync.Once
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{config: cfg}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// ContactRepository returns the file-backed contact repository instance.
func (c *Container) ContactRepository() usecase.ContactRepository {
	c.contactRepoInit.Do(func() {
		c.contactRepo = repository.NewFileContactRepository(c.config.ContactsFile)
	})
	return c.contactRepo
}

// ContactService returns the contact service instance.
func (c *Container) ContactService() *usecase.ContactService {
	c.contactServiceInit.Do(func() {
		c.contactService = usecase.NewContactService(c.ContactRepository())
	})
	return c.contactService
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down. The contact
// repository persists on every write, so there is nothing to flush here.
func (c *Container) Shutdown(ctx context.Context) error {
	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}
