package collector

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pullrefresh/internal/collector/services"
)

const bytesPerGB = 1024 * 1024 * 1024

// SystemCollector fans a snapshot out over its sensors concurrently.
type SystemCollector struct {
	cfg     CollectorConfig
	sensors []services.Sensor
	now     func() time.Time
}

func NewSystemCollector(cfg CollectorConfig) *SystemCollector {
	sensors := []services.Sensor{
		services.NewCPUSensor(),
		services.NewMemSensor(),
	}
	if cfg.EnableLoad {
		sensors = append(sensors, services.NewLoadSensor())
	}
	if cfg.EnableHostInfo {
		sensors = append(sensors, services.NewHostSensor())
	}
	return NewCollectorWithSensors(cfg, sensors...)
}

// NewCollectorWithSensors builds a collector over an explicit sensor set.
func NewCollectorWithSensors(cfg CollectorConfig, sensors ...services.Sensor) *SystemCollector {
	return &SystemCollector{cfg: cfg, sensors: sensors, now: time.Now}
}

type sensorResult struct {
	name  string
	value any
	err   error
}

// Snapshot collects every sensor within cfg.Timeout. Failed sensors are
// listed in Snapshot.Errors; only a snapshot where every sensor failed is
// returned as an error.
func (s *SystemCollector) Snapshot(ctx context.Context) (*Snapshot, error) {
	if len(s.sensors) == 0 {
		return nil, errors.New("collector has no sensors")
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	results := make(chan sensorResult, len(s.sensors))
	var wg sync.WaitGroup
	for _, sensor := range s.sensors {
		wg.Add(1)
		go func(sensor services.Sensor) {
			defer wg.Done()
			value, err := sensor.Collect(ctx)
			results <- sensorResult{name: sensor.Name(), value: value, err: err}
		}(sensor)
	}
	wg.Wait()
	close(results)

	snap := &Snapshot{TakenAt: s.now()}
	var errs []error
	for res := range results {
		if res.err != nil {
			serr := SensorError{Sensor: res.name, Err: res.err}
			snap.Errors = append(snap.Errors, serr)
			errs = append(errs, serr)
			continue
		}
		snap.merge(res.value)
	}

	if len(errs) == len(s.sensors) {
		return nil, fmt.Errorf("all sensors failed: %w", errors.Join(errs...))
	}
	return snap, nil
}

func (snap *Snapshot) merge(value any) {
	switch v := value.(type) {
	case services.CPUResult:
		snap.CPUUsage = v.TotalUsage
		snap.CPUPerCore = v.PerCore
		snap.CPUModel = v.Model
		snap.CPUCores = v.Cores
	case services.MemResult:
		snap.RAMUsage = v.UsedPercent
		snap.RAMUsedGB = float64(v.Used) / bytesPerGB
		snap.RAMTotalGB = float64(v.Total) / bytesPerGB
		snap.SwapUsage = v.SwapUsage
	case services.LoadResult:
		snap.Load1 = v.Load1
		snap.Load5 = v.Load5
		snap.Load15 = v.Load15
	case services.HostResult:
		snap.Hostname = v.Hostname
		snap.Platform = v.Platform
		snap.Kernel = v.KernelVersion
		snap.Uptime = v.Uptime
		snap.Procs = v.Procs
	}
}
