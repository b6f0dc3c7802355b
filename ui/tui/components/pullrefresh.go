package components

import (
	"strings"
	"time"

	"pullrefresh/internal/refresh"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"
)

const footerHeight = 1

// FrameMsg advances the settle animation by one frame.
type FrameMsg time.Time

// RefreshDoneMsg tells the container that the refresh work has finished.
type RefreshDoneMsg struct {
	Err error
}

// LoadDoneMsg ends the footer's loading stub.
type LoadDoneMsg struct{}

// PullOptions configures a PullRefresh.
type PullOptions struct {
	HeaderHeight    int
	TopPadding      int
	Footer          bool
	SpringFrequency float64
	SpringDamping   float64

	// ZoneID restricts presses to the container's bubblezone mark. Empty
	// accepts presses anywhere.
	ZoneID string
	Logger *log.Logger
}

// PullRefresh stacks padding, a header, the content and an optional footer,
// and scrolls that stack with the pointer. The window shows Height rows
// starting at the controller's offset, so at rest the header sits just above
// the visible area.
type PullRefresh struct {
	ctrl    *refresh.Controller
	gesture *refresh.Gesture
	content Content
	spinner spinner.Model

	onRefresh func() tea.Cmd
	pending   tea.Cmd

	headerHeight int
	topPadding   int
	footer       bool
	zoneID       string
	width        int
	height       int

	animating   bool
	spinning    bool
	lastRefresh time.Time
	lastErr     error
	now         func() time.Time
}

func NewPullRefresh(content Content, opts PullOptions) *PullRefresh {
	ctrlOpts := []refresh.Option{
		refresh.WithSpring(opts.SpringFrequency, opts.SpringDamping),
		refresh.WithLogger(opts.Logger),
	}
	if opts.Footer {
		ctrlOpts = append(ctrlOpts, refresh.WithFooter())
	}
	ctrl := refresh.NewController(ctrlOpts...)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	p := &PullRefresh{
		ctrl:         ctrl,
		gesture:      refresh.NewGesture(ctrl, content),
		content:      content,
		spinner:      s,
		headerHeight: opts.HeaderHeight,
		topPadding:   opts.TopPadding,
		footer:       opts.Footer,
		zoneID:       opts.ZoneID,
		now:          time.Now,
	}
	ctrl.SetOnRefreshing(func() {
		if p.onRefresh != nil {
			p.pending = p.onRefresh()
		}
	})
	ctrl.SetLayout(p.headerHeight, p.topPadding)
	return p
}

// SetOnRefreshingListener registers the refresh callback, replacing any
// previous one. The command it returns is run by the Bubble Tea program; it
// should eventually produce a RefreshDoneMsg.
func (p *PullRefresh) SetOnRefreshingListener(fn func() tea.Cmd) {
	p.onRefresh = fn
}

// ContentView returns the wrapped content.
func (p *PullRefresh) ContentView() Content {
	return p.content
}

func (p *PullRefresh) Controller() *refresh.Controller {
	return p.ctrl
}

// SetSize lays the stack out again for a window of width x height.
func (p *PullRefresh) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.content.SetSize(width, p.contentHeight())
	p.ctrl.SetLayout(p.headerHeight, p.topPadding)
}

func (p *PullRefresh) contentHeight() int {
	h := p.height
	if p.footer {
		h -= footerHeight
	}
	if h < 0 {
		h = 0
	}
	return h
}

func (p *PullRefresh) Init() tea.Cmd {
	return nil
}

func (p *PullRefresh) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return p, p.handleMouse(msg)

	case FrameMsg:
		p.animating = false
		if p.ctrl.Animate() {
			return p, p.frameCmd()
		}
		return p, nil

	case RefreshDoneMsg:
		p.lastErr = msg.Err
		p.lastRefresh = p.now()
		p.ctrl.CompleteRefresh()
		return p, p.frameCmd()

	case LoadDoneMsg:
		p.ctrl.CompleteLoading()
		return p, nil

	case spinner.TickMsg:
		if !p.busy() {
			p.spinning = false
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	}

	return p, p.content.Update(msg)
}

// StartLoading enters the footer's loading state. It returns nil when the
// footer is disabled or the container is busy.
func (p *PullRefresh) StartLoading() tea.Cmd {
	if !p.ctrl.StartLoading() {
		return nil
	}
	return p.spinCmd()
}

func (p *PullRefresh) handleMouse(msg tea.MouseMsg) tea.Cmd {
	ev, ok := p.toEvent(msg)
	if !ok || !p.gesture.Handle(ev) {
		// An unclaimed release can restart an interrupted settle.
		return tea.Batch(p.content.Update(msg), p.frameCmd())
	}

	cmds := []tea.Cmd{p.pending}
	p.pending = nil
	if p.ctrl.Settling() {
		cmds = append(cmds, p.frameCmd())
	}
	if p.busy() {
		cmds = append(cmds, p.spinCmd())
	}
	return tea.Batch(cmds...)
}

// toEvent maps terminal mouse input onto pointer events. Only the left
// button drags; wheel input always belongs to the content.
func (p *PullRefresh) toEvent(msg tea.MouseMsg) (refresh.Event, bool) {
	ev := refresh.Event{Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		if !p.inBounds(msg) {
			if p.gesture.Dragging() {
				ev.Action = refresh.Cancel
				return ev, true
			}
			return ev, false
		}
		ev.Action = refresh.Down
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Action = refresh.Move
	case tea.MouseActionRelease:
		ev.Action = refresh.Up
	default:
		return ev, false
	}
	return ev, true
}

func (p *PullRefresh) inBounds(msg tea.MouseMsg) bool {
	if p.zoneID == "" {
		return true
	}
	z := zone.Get(p.zoneID)
	return z != nil && z.InBounds(msg)
}

func (p *PullRefresh) busy() bool {
	return p.ctrl.Committed() || p.ctrl.State() == refresh.Loading
}

func (p *PullRefresh) frameCmd() tea.Cmd {
	if p.animating || !p.ctrl.Settling() {
		return nil
	}
	p.animating = true
	return tea.Tick(refresh.FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (p *PullRefresh) spinCmd() tea.Cmd {
	if p.spinning {
		return nil
	}
	p.spinning = true
	return p.spinner.Tick
}

func (p *PullRefresh) View() string {
	if p.height <= 0 {
		return ""
	}

	snap := p.ctrl.Snapshot()
	spin := p.spinner.View()

	rows := make([]string, 0, p.topPadding+p.headerHeight+p.height)
	rows = append(rows, fitLines("", p.topPadding)...)
	rows = append(rows, renderHeader(p.width, p.headerHeight, snap, spin, p.lastRefresh, p.lastErr)...)
	rows = append(rows, fitLines(p.content.View(), p.contentHeight())...)
	if p.footer {
		rows = append(rows, renderFooter(p.width, snap, spin)...)
	}

	start := snap.Offset
	if start > len(rows) {
		start = len(rows)
	}
	end := start + p.height
	if end > len(rows) {
		end = len(rows)
	}
	out := strings.Join(fitLines(strings.Join(rows[start:end], "\n"), p.height), "\n")

	if p.zoneID != "" {
		return zone.Mark(p.zoneID, out)
	}
	return out
}

// LastRefresh is when the last RefreshDoneMsg arrived.
func (p *PullRefresh) LastRefresh() time.Time {
	return p.lastRefresh
}

// SetZoneID restricts presses to the bubblezone mark id. The caller owns the
// zone manager and must zone.Scan the final view.
func (p *PullRefresh) SetZoneID(id string) {
	p.zoneID = id
}
