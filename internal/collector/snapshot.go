package collector

import (
	"context"
	"time"
)

// Snapshot is one refresh worth of system metrics.
type Snapshot struct {
	TakenAt time.Time

	// Host
	Hostname string
	Platform string
	Kernel   string
	Uptime   uint64
	Procs    uint64

	// CPU
	CPUUsage   float64 // Overall utilisation percentage (0-100)
	CPUPerCore []float64
	CPUModel   string
	CPUCores   int
	Load1      float64
	Load5      float64
	Load15     float64

	// Memory
	RAMUsage   float64
	RAMUsedGB  float64
	RAMTotalGB float64
	SwapUsage  float64

	// Errors lists sensors that failed; the rest of the snapshot is still valid.
	Errors []SensorError
}

// SensorError records one sensor failure inside a partial snapshot.
type SensorError struct {
	Sensor string
	Err    error
}

func (e SensorError) Error() string {
	return e.Sensor + ": " + e.Err.Error()
}

func (e SensorError) Unwrap() error { return e.Err }

// StatsProvider is anything that can take a Snapshot.
type StatsProvider interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}
