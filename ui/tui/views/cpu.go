package views

import (
	"fmt"

	"pullrefresh/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
)

type CPUView struct{}

func (v CPUView) Render(s state.AppState, props ViewProps) string {
	snap := s.Snapshot
	if snap == nil {
		return ""
	}

	info := fmt.Sprintf("Model: %s\nCores: %d\nLoad: %.2f, %.2f, %.2f",
		snap.CPUModel, snap.CPUCores, snap.Load1, snap.Load5, snap.Load15)

	var cores []string
	for i, usage := range snap.CPUPerCore {
		color := lipgloss.Color("46") // Green
		if usage > 90 {
			color = lipgloss.Color("196") // Red
		} else if usage > 70 {
			color = lipgloss.Color("220") // Gold
		}
		bar := lipgloss.NewStyle().Foreground(color).Render(usageBar(usage, 20))
		cores = append(cores, fmt.Sprintf("Core %2d: [%s] %5.1f%%", i, bar, usage))
	}

	// Split cores into columns if there are many
	const coresPerCol = 8
	var cols []string
	for i := 0; i < len(cores); i += coresPerCol {
		end := i + coresPerCol
		if end > len(cores) {
			end = len(cores)
		}
		col := lipgloss.JoinVertical(lipgloss.Left, cores[i:end]...)
		if i > 0 {
			col = lipgloss.NewStyle().PaddingLeft(4).Render(col)
		}
		cols = append(cols, col)
	}

	body := []string{info}
	if len(cols) > 0 {
		body = append(body, "", lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	if props.ChartView != "" {
		body = append(body, "", lipgloss.NewStyle().Bold(true).Render("Usage History"), props.ChartView)
	}
	return card("CPU", props.Width, body...)
}
