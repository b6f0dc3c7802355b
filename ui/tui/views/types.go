package views

import (
	"time"

	"pullrefresh/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the app model.
type ViewProps struct {
	Width     int
	ChartView string
	Now       time.Time
}

// View defines the contract for any renderable section of the report.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
