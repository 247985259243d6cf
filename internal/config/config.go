// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ContactsFile is the path to the JSON document holding the contact set.
	ContactsFile string

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// ListPageSize is the default number of contacts shown per page.
	ListPageSize int
	// ListMaxPageSize is the upper bound accepted for a page size.
	ListMaxPageSize int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Storage
		ContactsFile: env.GetString("CONTACTS_FILE", "contacts.json"),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Listing
		ListPageSize:    env.GetInt("LIST_PAGE_SIZE", 10),
		ListMaxPageSize: env.GetInt("LIST_MAX_PAGE_SIZE", 100),
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
