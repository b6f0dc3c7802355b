package services

import "context"

// Sensor is one source of system metrics. Collect returns the sensor's own
// result type; callers switch on it.
type Sensor interface {
	Name() string
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Collect(ctx context.Context) (any, error)
}
