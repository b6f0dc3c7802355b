package services

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
)

type CPUResult struct {
	TotalUsage float64
	PerCore    []float64
	Model      string
	Cores      int
}

type CPUSensor struct{}

func NewCPUSensor() *CPUSensor {
	return &CPUSensor{}
}

func (s *CPUSensor) Name() string {
	return "CPU"
}

func (s *CPUSensor) Connect(ctx context.Context) error {
	return nil
}

func (s *CPUSensor) Disconnect(ctx context.Context) error {
	return nil
}

// Collect samples utilisation since the previous call, so the first call
// after start-up may read as zero on some platforms.
func (s *CPUSensor) Collect(ctx context.Context) (any, error) {
	perCore, err := cpu.PercentWithContext(ctx, 0, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get per-core cpu percent: %w", err)
	}

	total := 0.0
	for _, p := range perCore {
		total += p
	}
	if len(perCore) > 0 {
		total /= float64(len(perCore))
	}

	model := "Unknown"
	if info, err := cpu.InfoWithContext(ctx); err == nil && len(info) > 0 {
		model = info[0].ModelName
	}

	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil || cores == 0 {
		cores = len(perCore)
	}

	return CPUResult{
		TotalUsage: total,
		PerCore:    perCore,
		Model:      model,
		Cores:      cores,
	}, nil
}
