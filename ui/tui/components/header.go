package components

import (
	"strings"
	"time"

	"pullrefresh/internal/refresh"
	"pullrefresh/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const (
	tipPull    = "Pull down to refresh"
	tipRelease = "Release to refresh"
	tipBusy    = "Refreshing…"
	tipLoading = "Loading…"
)

// headerTip picks the arrow and text for the current drag.
func headerTip(s refresh.Snapshot, spinner string) string {
	switch {
	case s.State == refresh.Loading:
		return tipLoading
	case s.Committed:
		return spinner + " " + tipBusy
	case s.Armed:
		return styles.ArmedStyle.Render("↑ " + tipRelease)
	default:
		return "↓ " + tipPull
	}
}

func renderHeader(width, height int, s refresh.Snapshot, spinner string, last time.Time, lastErr error) []string {
	if height <= 0 {
		return nil
	}

	stamp := "Last refreshed: never"
	if !last.IsZero() {
		stamp = "Last refreshed: " + last.Format("15:04:05")
	}
	lines := []string{headerTip(s, spinner), styles.TimeStyle.Render(stamp)}
	if lastErr != nil {
		lines = append(lines, styles.ErrorStyle.Render("Refresh failed: "+lastErr.Error()))
	}

	block := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
	return fitLines(styles.HeaderStyle.Width(width).Render(block), height)
}

func renderFooter(width int, s refresh.Snapshot, spinner string) []string {
	text := "· l to load more ·"
	if s.State == refresh.Loading {
		text = spinner + " Loading more…"
	}
	return fitLines(styles.FooterStyle.Width(width).Align(lipgloss.Center).Render(text), footerHeight)
}

// fitLines splits s into exactly n lines, truncating or padding with blanks.
func fitLines(s string, n int) []string {
	if n <= 0 {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}
