package engine

import (
	"testing"

	"pullrefresh/internal/collector"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		snap     *collector.Snapshot
		expected map[string]string // Metric Name -> Expected Status
	}{
		{
			name: "All Healthy",
			snap: &collector.Snapshot{
				CPUUsage: 10.0,
				RAMUsage: 20.0,
				CPUCores: 4,
				Load1:    1.0,
			},
			expected: map[string]string{
				"CPU Usage":   StatusHealthy,
				"RAM Usage":   StatusHealthy,
				"Swap Usage":  StatusHealthy,
				"Load / Core": StatusHealthy,
			},
		},
		{
			name: "CPU Critical",
			snap: &collector.Snapshot{CPUUsage: 95.0},
			expected: map[string]string{
				"CPU Usage": StatusCritical,
			},
		},
		{
			name: "RAM Warning",
			snap: &collector.Snapshot{RAMUsage: 75.0},
			expected: map[string]string{
				"RAM Usage": StatusWarning,
			},
		},
		{
			name: "Load Critical Per Core",
			snap: &collector.Snapshot{CPUCores: 2, Load1: 5.0},
			expected: map[string]string{
				"Load / Core": StatusCritical,
			},
		},
		{
			name: "Per Core Rows",
			snap: &collector.Snapshot{CPUPerCore: []float64{10, 80, 99}},
			expected: map[string]string{
				"Core 0": StatusHealthy,
				"Core 1": StatusWarning,
				"Core 2": StatusCritical,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Evaluate(tt.snap, DefaultThresholds())
			resultMap := make(map[string]string)
			for _, r := range results {
				resultMap[r.Name] = r.Status
			}

			for metric, expectedStatus := range tt.expected {
				if status, ok := resultMap[metric]; !ok {
					t.Errorf("Metric %s not found in results", metric)
				} else if status != expectedStatus {
					t.Errorf("Metric %s: expected status %s, got %s", metric, expectedStatus, status)
				}
			}
		})
	}
}

func TestEvaluateSkipsLoadWithoutCores(t *testing.T) {
	for _, r := range Evaluate(&collector.Snapshot{Load1: 3}, DefaultThresholds()) {
		if r.Name == "Load / Core" {
			t.Errorf("Expected no load row without a core count, got %+v", r)
		}
	}
}

func TestEvaluateNil(t *testing.T) {
	if got := Evaluate(nil, DefaultThresholds()); got != nil {
		t.Errorf("Expected nil results for nil snapshot, got %v", got)
	}
}

func TestWorst(t *testing.T) {
	tests := []struct {
		statuses []string
		want     string
	}{
		{nil, StatusHealthy},
		{[]string{StatusHealthy, StatusWarning}, StatusWarning},
		{[]string{StatusWarning, StatusCritical, StatusHealthy}, StatusCritical},
	}
	for _, tt := range tests {
		var results []CheckResult
		for _, s := range tt.statuses {
			results = append(results, CheckResult{Status: s})
		}
		if got := Worst(results); got != tt.want {
			t.Errorf("Worst(%v) = %s, want %s", tt.statuses, got, tt.want)
		}
	}
}
