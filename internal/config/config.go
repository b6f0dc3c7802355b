// Package config loads the pullrefresh TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the on-disk configuration.
type Config struct {
	Pull      PullSettings      `toml:"pull"`
	Collector CollectorSettings `toml:"collector"`
	History   HistorySettings   `toml:"history"`
	Log       LogSettings       `toml:"log"`
}

// PullSettings shapes the pull-to-refresh container.
type PullSettings struct {
	HeaderHeight    int     `toml:"header_height"`
	TopPadding      int     `toml:"top_padding"`
	Footer          bool    `toml:"footer"`
	SpringFrequency float64 `toml:"spring_frequency"`
	SpringDamping   float64 `toml:"spring_damping"`
}

type CollectorSettings struct {
	Timeout Duration `toml:"timeout"`
}

// HistorySettings controls the refresh history store. An empty DSN keeps
// the history in memory.
type HistorySettings struct {
	DSN  string `toml:"dsn"`
	Keep int    `toml:"keep"`
}

type LogSettings struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// Duration reads "2s"-style strings from TOML.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Pull: PullSettings{
			HeaderHeight:    4,
			TopPadding:      0,
			Footer:          false,
			SpringFrequency: 12.0,
			SpringDamping:   1.0,
		},
		Collector: CollectorSettings{
			Timeout: Duration{2 * time.Second},
		},
		History: HistorySettings{
			Keep: 5,
		},
		Log: LogSettings{
			Path:  "pullrefresh.log",
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Pull.HeaderHeight < 1 {
		return &ConfigError{Field: "pull.header_height", Message: "must be at least 1"}
	}
	if c.Pull.TopPadding < 0 {
		return &ConfigError{Field: "pull.top_padding", Message: "must not be negative"}
	}
	if c.Pull.SpringFrequency <= 0 {
		return &ConfigError{Field: "pull.spring_frequency", Message: "must be positive"}
	}
	if c.Pull.SpringDamping <= 0 {
		return &ConfigError{Field: "pull.spring_damping", Message: "must be positive"}
	}
	if c.Collector.Timeout.Duration <= 0 {
		return &ConfigError{Field: "collector.timeout", Message: "must be positive"}
	}
	if c.History.Keep < 0 {
		return &ConfigError{Field: "history.keep", Message: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
