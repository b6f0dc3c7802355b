package collector

import "time"

// CollectorConfig contains configurable parameters for the system collector.
// Use DefaultCollectorConfig() to get sensible defaults, then override as needed.
type CollectorConfig struct {
	Timeout time.Duration // Upper bound for one snapshot (default: 2s)

	CPUHistoryCapacity int // Points kept for the CPU chart (default: 31)

	EnableLoad     bool // Collect load averages (default: true)
	EnableHostInfo bool // Collect hostname/kernel/uptime (default: true)
}

// DefaultCollectorConfig returns a CollectorConfig with sensible defaults.
func DefaultCollectorConfig() CollectorConfig {
	return CollectorConfig{
		Timeout:            2 * time.Second,
		CPUHistoryCapacity: 31,
		EnableLoad:         true,
		EnableHostInfo:     true,
	}
}

// WithTimeout returns a copy of the config with a different snapshot timeout.
func (c CollectorConfig) WithTimeout(d time.Duration) CollectorConfig {
	c.Timeout = d
	return c
}

// WithHostInfo returns a copy of the config with host info enabled/disabled.
func (c CollectorConfig) WithHostInfo(enabled bool) CollectorConfig {
	c.EnableHostInfo = enabled
	return c
}

// WithLoad returns a copy of the config with load averages enabled/disabled.
func (c CollectorConfig) WithLoad(enabled bool) CollectorConfig {
	c.EnableLoad = enabled
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c CollectorConfig) Validate() error {
	if c.Timeout <= 0 {
		return &ConfigError{Field: "Timeout", Message: "must be positive"}
	}
	if c.CPUHistoryCapacity < 2 {
		return &ConfigError{Field: "CPUHistoryCapacity", Message: "must be at least 2"}
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
