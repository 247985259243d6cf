package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "contacts.json", cfg.ContactsFile)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, 10, cfg.ListPageSize)
				assert.Equal(t, 100, cfg.ListMaxPageSize)
			},
		},
		{
			name: "load custom storage configuration",
			envVars: map[string]string{
				"CONTACTS_FILE": "/tmp/team-contacts.json",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/team-contacts.json", cfg.ContactsFile)
			},
		},
		{
			name: "load custom listing configuration",
			envVars: map[string]string{
				"LIST_PAGE_SIZE":     "25",
				"LIST_MAX_PAGE_SIZE": "50",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 25, cfg.ListPageSize)
				assert.Equal(t, 50, cfg.ListMaxPageSize)
			},
		},
		{
			name: "load custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg := Load()
			tt.validate(t, cfg)
		})
	}
}
