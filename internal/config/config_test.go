package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Pull.HeaderHeight != 4 {
		t.Errorf("Expected HeaderHeight 4, got %d", cfg.Pull.HeaderHeight)
	}
	if cfg.Pull.Footer {
		t.Error("Expected footer to be disabled by default")
	}
	if cfg.Collector.Timeout.Duration != 2*time.Second {
		t.Errorf("Expected collector timeout 2s, got %v", cfg.Collector.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "zero header", modify: func(c *Config) { c.Pull.HeaderHeight = 0 }, wantErr: "pull.header_height"},
		{name: "negative padding", modify: func(c *Config) { c.Pull.TopPadding = -1 }, wantErr: "pull.top_padding"},
		{name: "zero frequency", modify: func(c *Config) { c.Pull.SpringFrequency = 0 }, wantErr: "pull.spring_frequency"},
		{name: "zero damping", modify: func(c *Config) { c.Pull.SpringDamping = 0 }, wantErr: "pull.spring_damping"},
		{name: "zero timeout", modify: func(c *Config) { c.Collector.Timeout.Duration = 0 }, wantErr: "collector.timeout"},
		{name: "negative keep", modify: func(c *Config) { c.History.Keep = -2 }, wantErr: "history.keep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.wantErr, cfgErr.Field)
		})
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pullrefresh.toml")
	data := `
[pull]
header_height = 6
footer = true

[collector]
timeout = "750ms"

[history]
dsn = "history.duckdb"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Pull.HeaderHeight)
	assert.True(t, cfg.Pull.Footer)
	assert.Equal(t, 12.0, cfg.Pull.SpringFrequency, "unset keys keep their defaults")
	assert.Equal(t, 750*time.Millisecond, cfg.Collector.Timeout.Duration)
	assert.Equal(t, "history.duckdb", cfg.History.DSN)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pullrefresh.toml")
	require.NoError(t, os.WriteFile(path, []byte("[pull]\nheader_height = 0\n"), 0644))

	_, err := Load(path)
	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pullrefresh.toml")
	require.NoError(t, os.WriteFile(path, []byte("[collector]\ntimeout = \"soon\"\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pullrefresh.toml")
	cfg := Default()
	cfg.Pull.TopPadding = 2
	cfg.Log.Level = "debug"

	require.NoError(t, Save(cfg, path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
