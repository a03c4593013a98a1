// Package config handles configuration loading and validation for campusmart.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/campusmart/campusmart/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	TUI         TUIConfig         `yaml:"tui"`
	Database    DatabaseConfig    `yaml:"database"`
	Submissions SubmissionsConfig `yaml:"submissions"`
	DataDir     string            `yaml:"-"` // set by caller, not from config file
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"` // one of styles.ThemeNames()
}

// DatabaseConfig tunes the SQLite connection pool.
type DatabaseConfig struct {
	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
	BusyTimeout  int `yaml:"busy_timeout"` // milliseconds
}

// SubmissionsConfig controls the local audit trail of accepted forms.
type SubmissionsConfig struct {
	// Record is a pointer so an omitted key keeps the default (enabled).
	Record *bool `yaml:"record"`
}

// RecordEnabled reports whether accepted submissions are written to the database.
func (s SubmissionsConfig) RecordEnabled() bool {
	return s.Record == nil || *s.Record
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
		Database: DatabaseConfig{
			MaxOpenConns: 4,
			MaxIdleConns: 2,
			BusyTimeout:  5000,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if !slices.Contains(styles.ThemeNames(), c.TUI.Theme) {
		return fmt.Errorf("tui.theme %q is not a built-in theme (available: %v)", c.TUI.Theme, styles.ThemeNames())
	}

	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database.max_open_conns must be at least 1")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns cannot exceed database.max_open_conns")
	}
	if c.Database.BusyTimeout < 0 {
		return fmt.Errorf("database.busy_timeout cannot be negative")
	}

	return nil
}

// DatabaseFile returns the path to the SQLite database.
func (c *Config) DatabaseFile() string {
	return filepath.Join(c.DataDir, "campusmart.db")
}
