package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load("", "/tmp/data")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/data", cfg.DataDir)
	assert.Equal(t, DefaultConfig().TUI.Theme, cfg.TUI.Theme)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
	assert.Equal(t, 2, cfg.Database.MaxIdleConns)
	assert.Equal(t, 5000, cfg.Database.BusyTimeout)
	assert.True(t, cfg.Submissions.RecordEnabled())
}

func TestLoad_missingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "/tmp/data")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Database, cfg.Database)
}

func TestLoad_fromFile(t *testing.T) {
	path := writeConfig(t, `
tui:
  theme: midnight
database:
  max_open_conns: 8
submissions:
  record: false
`)

	cfg, err := Load(path, "/tmp/data")
	require.NoError(t, err)

	assert.Equal(t, "midnight", cfg.TUI.Theme)
	assert.Equal(t, 8, cfg.Database.MaxOpenConns)
	assert.Equal(t, 2, cfg.Database.MaxIdleConns, "unset keys fall back to defaults")
	assert.False(t, cfg.Submissions.RecordEnabled())
	assert.Equal(t, "/tmp/data", cfg.DataDir)
}

func TestLoad_errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "tui: [", "parse config file"},
		{"unknown theme", "tui:\n  theme: neon\n", "not a built-in theme"},
		{"negative idle", "database:\n  max_idle_conns: -1\n", "max_idle_conns cannot be negative"},
		{"idle above open", "database:\n  max_open_conns: 1\n  max_idle_conns: 3\n", "cannot exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), "/tmp/data")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_emptyDataDir(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data directory")
}

func TestValidateDeep(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DataDir = t.TempDir()
		assert.NoError(t, cfg.ValidateDeep(writeConfig(t, "")))
	})

	t.Run("config path is a directory", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DataDir = t.TempDir()

		err := cfg.ValidateDeep(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config_file")
	})

	t.Run("data dir is a file", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DataDir = writeConfig(t, "")

		err := cfg.ValidateDeep("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data_dir")
	})
}

func TestWarnings(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.Warnings())

	off := false
	cfg.Submissions.Record = &off
	cfg.Database.BusyTimeout = 100

	warnings := cfg.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "Submissions", warnings[0].Category)
	assert.Equal(t, "Database", warnings[1].Category)
}
