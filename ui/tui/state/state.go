package state

import (
	"time"

	"pullrefresh/internal/collector"
	"pullrefresh/internal/engine"
	"pullrefresh/internal/history"
)

// AppState holds the latest refresh result shown by the report.
type AppState struct {
	Snapshot   *collector.Snapshot
	Results    []engine.CheckResult
	LastUpdate time.Time
	Err        error
	History    []history.Cycle
}
