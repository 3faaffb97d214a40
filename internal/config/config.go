package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds process-wide settings.
type Config struct {
	DBPath      string
	DatasetPath string // empty means the embedded curriculum
	LogLevel    string
	LogFile     string // empty means stderr
}

// DefaultConfig returns the defaults rooted at the user's home directory.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:   filepath.Join(home, ".fluxo", "fluxo.db"),
		LogLevel: "warn",
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := DefaultConfig(home)

	if v := os.Getenv("FLUXO_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("FLUXO_DATASET"); v != "" {
		cfg.DatasetPath = v
	}
	if v := os.Getenv("FLUXO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("FLUXO_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	return cfg, nil
}

// DataDir is the directory holding the database.
func (c Config) DataDir() string {
	return filepath.Dir(c.DBPath)
}
