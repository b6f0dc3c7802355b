package services

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/load"
)

type LoadResult struct {
	Load1  float64
	Load5  float64
	Load15 float64
}

type LoadSensor struct{}

func NewLoadSensor() *LoadSensor {
	return &LoadSensor{}
}

func (s *LoadSensor) Name() string {
	return "Load"
}

func (s *LoadSensor) Connect(ctx context.Context) error {
	return nil
}

func (s *LoadSensor) Disconnect(ctx context.Context) error {
	return nil
}

func (s *LoadSensor) Collect(ctx context.Context) (any, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get load average: %w", err)
	}
	return LoadResult{Load1: avg.Load1, Load5: avg.Load5, Load15: avg.Load15}, nil
}
