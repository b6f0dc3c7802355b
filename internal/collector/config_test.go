package collector

import (
	"testing"
	"time"
)

func TestDefaultCollectorConfig(t *testing.T) {
	cfg := DefaultCollectorConfig()

	if cfg.Timeout != 2*time.Second {
		t.Errorf("Expected Timeout 2s, got %v", cfg.Timeout)
	}
	if cfg.CPUHistoryCapacity != 31 {
		t.Errorf("Expected CPUHistoryCapacity 31, got %d", cfg.CPUHistoryCapacity)
	}
	if !cfg.EnableLoad {
		t.Error("Expected EnableLoad to be true by default")
	}
	if !cfg.EnableHostInfo {
		t.Error("Expected EnableHostInfo to be true by default")
	}
}

func TestCollectorConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     CollectorConfig
		wantErr bool
	}{
		{
			name:    "valid default config",
			cfg:     DefaultCollectorConfig(),
			wantErr: false,
		},
		{
			name:    "zero timeout",
			cfg:     DefaultCollectorConfig().WithTimeout(0),
			wantErr: true,
		},
		{
			name:    "negative timeout",
			cfg:     DefaultCollectorConfig().WithTimeout(-time.Second),
			wantErr: true,
		},
		{
			name: "history too short",
			cfg: CollectorConfig{
				Timeout:            time.Second,
				CPUHistoryCapacity: 1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCollectorConfig_Chaining(t *testing.T) {
	base := DefaultCollectorConfig()
	cfg := base.
		WithTimeout(500 * time.Millisecond).
		WithHostInfo(false).
		WithLoad(false)

	if cfg.Timeout != 500*time.Millisecond {
		t.Errorf("Chained Timeout failed, got %v", cfg.Timeout)
	}
	if cfg.EnableHostInfo || cfg.EnableLoad {
		t.Errorf("Chained feature flags failed: host=%v load=%v", cfg.EnableHostInfo, cfg.EnableLoad)
	}
	if base.Timeout != 2*time.Second {
		t.Error("WithTimeout mutated original config")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Chained config should be valid, got error: %v", err)
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{
		Field:   "TestField",
		Message: "test message",
	}

	expected := "config error: TestField test message"
	if err.Error() != expected {
		t.Errorf("Expected error '%s', got '%s'", expected, err.Error())
	}
}
