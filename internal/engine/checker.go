package engine

import (
	"fmt"

	"pullrefresh/internal/collector"
)

const (
	StatusHealthy  = "OK"
	StatusWarning  = "WARN"
	StatusCritical = "CRIT"
)

// Level defines warning and critical levels for one metric.
type Level struct {
	Warning  float64
	Critical float64
}

type Thresholds struct {
	CPU  Level
	RAM  Level
	Swap Level
	Load Level // load average per core
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		CPU:  Level{Warning: 70.0, Critical: 90.0},
		RAM:  Level{Warning: 70.0, Critical: 90.0},
		Swap: Level{Warning: 50.0, Critical: 80.0},
		Load: Level{Warning: 1.0, Critical: 2.0},
	}
}

type CheckResult struct {
	Name   string
	Value  float64
	Unit   string
	Status string
}

func getStatus(value float64, l Level) string {
	if value > l.Critical {
		return StatusCritical
	}
	if value > l.Warning {
		return StatusWarning
	}
	return StatusHealthy
}

// Evaluate grades a snapshot. Results keep a fixed order so the report does
// not reshuffle between refreshes.
func Evaluate(snap *collector.Snapshot, th Thresholds) []CheckResult {
	if snap == nil {
		return nil
	}

	result := []CheckResult{
		{Name: "CPU Usage", Value: snap.CPUUsage, Unit: "%", Status: getStatus(snap.CPUUsage, th.CPU)},
		{Name: "RAM Usage", Value: snap.RAMUsage, Unit: "%", Status: getStatus(snap.RAMUsage, th.RAM)},
		{Name: "Swap Usage", Value: snap.SwapUsage, Unit: "%", Status: getStatus(snap.SwapUsage, th.Swap)},
	}

	// Load is only meaningful relative to the core count.
	if snap.CPUCores > 0 {
		perCore := snap.Load1 / float64(snap.CPUCores)
		result = append(result, CheckResult{
			Name:   "Load / Core",
			Value:  perCore,
			Status: getStatus(perCore, th.Load),
		})
	}

	for i, usage := range snap.CPUPerCore {
		result = append(result, CheckResult{
			Name:   fmt.Sprintf("Core %d", i),
			Value:  usage,
			Unit:   "%",
			Status: getStatus(usage, th.CPU),
		})
	}
	return result
}

// Worst returns the most severe status in results.
func Worst(results []CheckResult) string {
	worst := StatusHealthy
	for _, r := range results {
		switch r.Status {
		case StatusCritical:
			return StatusCritical
		case StatusWarning:
			worst = StatusWarning
		}
	}
	return worst
}
