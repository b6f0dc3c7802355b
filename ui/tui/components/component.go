package components

import (
	"pullrefresh/internal/refresh"

	tea "github.com/charmbracelet/bubbletea"
)

// Component is the interface that all UI components must implement.
// It is similar to tea.Model but tailored for widgets.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Model, tea.Cmd)
	View() string
}

// Content is a view that can sit inside a PullRefresh. It reports its own
// top edge so the container knows when a downward drag belongs to it.
type Content interface {
	refresh.TopProbe
	View() string
	Update(msg tea.Msg) tea.Cmd
	SetSize(width, height int)
}
