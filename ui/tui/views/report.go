package views

import (
	"fmt"
	"strings"
	"time"

	"pullrefresh/ui/tui/state"
	"pullrefresh/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// HostView shows who we are looking at.
type HostView struct{}

func (v HostView) Render(s state.AppState, props ViewProps) string {
	snap := s.Snapshot
	if snap == nil {
		return card("Host", props.Width, styles.TimeStyle.Render("Loading first snapshot…"))
	}
	return card("Host", props.Width,
		fmt.Sprintf("Hostname: %s", snap.Hostname),
		fmt.Sprintf("Platform: %s", snap.Platform),
		fmt.Sprintf("Kernel:   %s", snap.Kernel),
		fmt.Sprintf("Uptime:   %s", formatUptime(snap.Uptime)),
		fmt.Sprintf("Procs:    %d", snap.Procs),
	)
}

// ChecksView lists threshold results, one row per metric.
type ChecksView struct{}

func (v ChecksView) Render(s state.AppState, props ViewProps) string {
	if len(s.Results) == 0 {
		return ""
	}
	var rows []string
	for _, r := range s.Results {
		val := fmt.Sprintf("%.1f%s", r.Value, r.Unit)
		rows = append(rows, fmt.Sprintf("%-15s : %s", r.Name,
			ColorForStatus(r.Status).Render(fmt.Sprintf("%s [%s]", val, r.Status))))
	}
	if snap := s.Snapshot; snap != nil && snap.RAMTotalGB > 0 {
		rows = append(rows, fmt.Sprintf("%-15s : %.1f / %.1f GB", "RAM Used", snap.RAMUsedGB, snap.RAMTotalGB))
	}
	return card("Checks", props.Width, rows...)
}

// HistoryView lists the most recent refresh cycles.
type HistoryView struct{}

func (v HistoryView) Render(s state.AppState, props ViewProps) string {
	if len(s.History) == 0 {
		return ""
	}
	var rows []string
	for _, c := range s.History {
		status := ColorForStatus("OK").Render("ok")
		if !c.OK {
			status = styles.ErrorStyle.Render("failed")
			if c.Err != "" {
				status += " " + c.Err
			}
		}
		rows = append(rows, fmt.Sprintf("#%-4d %s  %6dms  %s",
			c.ID, c.StartedAt.Format("15:04:05"), c.Duration().Milliseconds(), status))
	}
	return card("Recent refreshes", props.Width, rows...)
}

// ReportView stacks every section into the scrollable report.
type ReportView struct{}

func (v ReportView) Render(s state.AppState, props ViewProps) string {
	sections := []View{HostView{}, ChecksView{}, CPUView{}, HistoryView{}}

	var parts []string
	if s.Err != nil {
		parts = append(parts, styles.ErrorStyle.Render("Error: "+s.Err.Error()))
	}
	if snap := s.Snapshot; snap != nil {
		for _, e := range snap.Errors {
			parts = append(parts, styles.ErrorStyle.Render("Sensor "+e.Error()))
		}
	}
	for _, sec := range sections {
		if out := sec.Render(s, props); out != "" {
			parts = append(parts, out)
		}
	}
	if !s.LastUpdate.IsZero() {
		age := props.Now.Sub(s.LastUpdate).Truncate(time.Second)
		parts = append(parts, styles.TimeStyle.Render(
			fmt.Sprintf("Snapshot taken %s (%s ago)", s.LastUpdate.Format("15:04:05"), age)))
	}
	return strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, parts...), "\n")
}
