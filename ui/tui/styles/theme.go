package styles

import "github.com/charmbracelet/lipgloss"

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	Special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	Muted     = lipgloss.Color("#888")

	BrandColor = lipgloss.Color("#f27b24")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(BrandColor).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)

	StatusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFF"))

	// Pull-to-refresh chrome
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DDD")).
			Background(lipgloss.Color("#222"))

	ArmedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Special)

	TimeStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(Muted)

	FooterStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)
