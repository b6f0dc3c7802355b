package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewportContent wraps a scrollable viewport. Its edge probe is the
// viewport's own scroll position.
type ViewportContent struct {
	vp viewport.Model
}

func NewViewportContent(width, height int) *ViewportContent {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true
	return &ViewportContent{vp: vp}
}

func (c *ViewportContent) AtTop() bool    { return c.vp.AtTop() }
func (c *ViewportContent) AtBottom() bool { return c.vp.AtBottom() }

func (c *ViewportContent) View() string {
	return c.vp.View()
}

func (c *ViewportContent) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.vp, cmd = c.vp.Update(msg)
	return cmd
}

func (c *ViewportContent) SetSize(width, height int) {
	c.vp.Width = width
	c.vp.Height = height
}

// SetContent replaces the text and keeps the scroll position when possible.
func (c *ViewportContent) SetContent(s string) {
	c.vp.SetContent(s)
}

// Viewport exposes the wrapped model for callers that need its key map or
// scroll helpers.
func (c *ViewportContent) Viewport() *viewport.Model {
	return &c.vp
}

// TextContent is a fixed block of text. It cannot scroll, so it is always at
// both edges and every downward drag pulls the header.
type TextContent struct {
	Text   string
	width  int
	height int
}

func NewTextContent(text string) *TextContent {
	return &TextContent{Text: text}
}

func (c *TextContent) AtTop() bool                { return true }
func (c *TextContent) AtBottom() bool             { return true }
func (c *TextContent) Update(msg tea.Msg) tea.Cmd { return nil }

func (c *TextContent) SetSize(width, height int) {
	c.width = width
	c.height = height
}

func (c *TextContent) View() string {
	lines := strings.Split(c.Text, "\n")
	if c.height > 0 && len(lines) > c.height {
		lines = lines[:c.height]
	}
	style := lipgloss.NewStyle()
	if c.width > 0 {
		style = style.Width(c.width).MaxWidth(c.width)
	}
	return style.Render(strings.Join(lines, "\n"))
}
