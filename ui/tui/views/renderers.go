package views

import (
	"time"

	"pullrefresh/ui/tui/state"
)

func RenderReport(s state.AppState, chartView string, width int, now time.Time) string {
	v := ReportView{}
	return v.Render(s, ViewProps{
		Width:     width,
		ChartView: chartView,
		Now:       now,
	})
}
