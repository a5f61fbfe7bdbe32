// Package platform wires configuration, the storage adapter and the
// service together. It is the composition root behind the public facade.
package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-derived settings. Variables use the prefix
// "SATCHEL", e.g. SATCHEL_DATA_FILE, SATCHEL_LOG_LEVEL.
type Config struct {
	// DataFile is the snapshot path. Defaults to ~/.satchel/satchel.json;
	// the extension selects the format (.json, .yaml, .yml).
	DataFile string `envconfig:"DATA_FILE"`

	// CountryCode prefixes 10-digit national phone numbers.
	CountryCode string `envconfig:"COUNTRY_CODE" default:"38"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads configuration from environment variables and fills in
// the default data file path.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("SATCHEL", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.DataFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.DataFile = filepath.Join(home, ".satchel", "satchel.json")
	}

	return &cfg, nil
}
