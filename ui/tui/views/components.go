package views

import (
	"fmt"
	"strings"

	"pullrefresh/internal/engine"
	"pullrefresh/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

func ColorForStatus(status string) lipgloss.Style {
	sStyle := styles.StatusStyle
	if status == engine.StatusWarning {
		return sStyle.Foreground(lipgloss.Color("220")) // Gold
	} else if status == engine.StatusCritical {
		return sStyle.Foreground(lipgloss.Color("196")) // Red
	}
	return sStyle.Foreground(lipgloss.Color("46")) // Green
}

// card renders a titled, bordered box that fits in width.
func card(title string, width int, body ...string) string {
	style := styles.CardStyle
	if width > 4 {
		style = style.Width(width - 2)
	}
	parts := append([]string{lipgloss.NewStyle().Bold(true).Render(title)}, body...)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// usageBar draws a fixed width bar for a 0-100 percentage.
func usageBar(usage float64, width int) string {
	filled := int(float64(width) * usage / 100)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func formatUptime(seconds uint64) string {
	d := seconds / 86400
	h := (seconds % 86400) / 3600
	m := (seconds % 3600) / 60
	if d > 0 {
		return fmt.Sprintf("%dd %dh %dm", d, h, m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
