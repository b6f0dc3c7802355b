package tui

import (
	"context"
	"time"

	"pullrefresh/internal/collector"
	"pullrefresh/internal/config"
	"pullrefresh/internal/engine"
	"pullrefresh/internal/history"
	"pullrefresh/internal/logging"
	"pullrefresh/ui/tui/components"
	"pullrefresh/ui/tui/state"
	"pullrefresh/ui/tui/styles"
	"pullrefresh/ui/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"
)

const (
	pullZoneID     = "pull_area"
	chartHeight    = 8
	loadStubDelay  = 800 * time.Millisecond
	historyTimeout = 2 * time.Second
)

// MainModel hosts the pull-to-refresh container around the system report.
type MainModel struct {
	provider   collector.StatsProvider
	recorder   history.Recorder
	cfg        config.Config
	thresholds engine.Thresholds
	logger     *log.Logger

	state  state.AppState
	pull   *components.PullRefresh
	report *components.ViewportContent
	cpu    *components.CPUWidget
	zones  bool
	now    func() time.Time

	quitting bool
	width    int
	height   int
}

// MetricsLoadedMsg carries one snapshot. Pulled marks snapshots started by
// a pull gesture rather than the initial load.
type MetricsLoadedMsg struct {
	Snapshot   *collector.Snapshot
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
	Pulled     bool
}

// HistoryLoadedMsg carries the recent refresh cycles after a record.
type HistoryLoadedMsg struct {
	Cycles []history.Cycle
	Err    error
}

// InitialModel builds the app. recorder may be nil to run without history.
func InitialModel(provider collector.StatsProvider, cfg config.Config, recorder history.Recorder) *MainModel {
	report := components.NewViewportContent(0, 0)

	m := &MainModel{
		provider:   provider,
		recorder:   recorder,
		cfg:        cfg,
		thresholds: engine.DefaultThresholds(),
		logger:     logging.WithPrefix("app"),
		report:     report,
		cpu:        components.NewCPUWidget(30, chartHeight, collector.DefaultCollectorConfig().CPUHistoryCapacity),
		now:        time.Now,
	}
	m.pull = components.NewPullRefresh(report, components.PullOptions{
		HeaderHeight:    cfg.Pull.HeaderHeight,
		TopPadding:      cfg.Pull.TopPadding,
		Footer:          cfg.Pull.Footer,
		SpringFrequency: cfg.Pull.SpringFrequency,
		SpringDamping:   cfg.Pull.SpringDamping,
		Logger:          logging.WithPrefix("refresh"),
	})
	m.pull.SetOnRefreshingListener(func() tea.Cmd {
		m.logger.Info("refresh started")
		return m.fetchMetricsCmd(true)
	})
	m.renderReport()
	return m
}

// EnableZones hit-tests presses against the container's zone. It needs the
// global bubblezone manager, which Init creates.
func (m *MainModel) EnableZones() {
	m.zones = true
	m.pull.SetZoneID(pullZoneID)
}

func (m *MainModel) Init() tea.Cmd {
	if m.zones {
		zone.NewGlobal()
	}
	return tea.Batch(m.pull.Init(), m.fetchMetricsCmd(false))
}

func (m *MainModel) fetchMetricsCmd(pulled bool) tea.Cmd {
	provider := m.provider
	timeout := m.cfg.Collector.Timeout.Duration
	now := m.now
	return func() tea.Msg {
		started := now()
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		snap, err := provider.Snapshot(ctx)
		return MetricsLoadedMsg{
			Snapshot:   snap,
			Err:        err,
			StartedAt:  started,
			FinishedAt: now(),
			Pulled:     pulled,
		}
	}
}

func (m *MainModel) recordCmd(msg MetricsLoadedMsg) tea.Cmd {
	if m.recorder == nil {
		return nil
	}
	rec := m.recorder
	keep := m.cfg.History.Keep
	logger := m.logger

	cycle := history.Cycle{
		StartedAt:  msg.StartedAt,
		FinishedAt: msg.FinishedAt,
		OK:         msg.Err == nil,
	}
	if msg.Err != nil {
		cycle.Err = msg.Err.Error()
	}
	if msg.Snapshot != nil {
		cycle.CPUPct = msg.Snapshot.CPUUsage
		cycle.RAMPct = msg.Snapshot.RAMUsage
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
		defer cancel()
		if err := rec.Record(ctx, cycle); err != nil {
			logger.Warn("failed to record refresh", "err", err)
		}
		cycles, err := rec.Recent(ctx, keep)
		return HistoryLoadedMsg{Cycles: cycles, Err: err}
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case MetricsLoadedMsg:
		return m.handleMetricsLoadedMsg(msg)

	case HistoryLoadedMsg:
		if msg.Err != nil {
			m.logger.Warn("failed to load history", "err", msg.Err)
			return m, nil
		}
		m.state.History = msg.Cycles
		m.renderReport()
		return m, nil
	}

	// Mouse, frames, spinner ticks and completion messages belong to the
	// container.
	_, cmd := m.pull.Update(msg)
	return m, cmd
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "l":
		cmd := m.pull.StartLoading()
		if cmd == nil {
			return m, nil
		}
		return m, tea.Batch(cmd, tea.Tick(loadStubDelay, func(time.Time) tea.Msg {
			return components.LoadDoneMsg{}
		}))
	}

	_, cmd := m.pull.Update(msg)
	return m, cmd
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// One row each for the title and the help line.
	pullHeight := msg.Height - 2
	if pullHeight < 0 {
		pullHeight = 0
	}
	m.pull.SetSize(msg.Width, pullHeight)
	m.cpu.Resize(msg.Width-8, chartHeight)
	m.renderReport()
	return m, nil
}

func (m *MainModel) handleMetricsLoadedMsg(msg MetricsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Error("snapshot failed", "err", msg.Err, "pulled", msg.Pulled)
		m.state.Err = msg.Err
	} else {
		snap := msg.Snapshot
		m.state.Err = nil
		m.state.Snapshot = snap
		m.state.Results = engine.Evaluate(snap, m.thresholds)
		m.state.LastUpdate = msg.FinishedAt
		m.cpu.Push(snap.CPUUsage)
		m.logger.Info("snapshot loaded",
			"cpu", snap.CPUUsage,
			"ram", snap.RAMUsage,
			"partial", len(snap.Errors),
			"took", msg.FinishedAt.Sub(msg.StartedAt),
		)
	}
	m.renderReport()

	var cmds []tea.Cmd
	if msg.Pulled {
		_, cmd := m.pull.Update(components.RefreshDoneMsg{Err: msg.Err})
		cmds = append(cmds, cmd, m.recordCmd(msg))
	}
	return m, tea.Batch(cmds...)
}

func (m *MainModel) renderReport() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	chart := ""
	if len(m.cpu.History) > 1 {
		chart = m.cpu.View()
	}
	m.report.SetContent(views.RenderReport(m.state, chart, width, m.now()))
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	status := ""
	if len(m.state.Results) > 0 {
		worst := engine.Worst(m.state.Results)
		status = " " + views.ColorForStatus(worst).Render(worst)
	}
	title := lipgloss.JoinHorizontal(lipgloss.Left, styles.TitleStyle.Render("System Panel"), status)
	help := lipgloss.NewStyle().Foreground(styles.Subtle).Render("drag down to refresh • ↑/↓ scroll • q quit")
	if m.cfg.Pull.Footer {
		help = lipgloss.NewStyle().Foreground(styles.Subtle).Render("drag down to refresh • ↑/↓ scroll • l load more • q quit")
	}

	body := lipgloss.JoinVertical(lipgloss.Left, title, m.pull.View(), help)
	if m.zones {
		return zone.Scan(body)
	}
	return body
}

func Start(provider collector.StatsProvider, cfg config.Config, recorder history.Recorder) error {
	m := InitialModel(provider, cfg, recorder)
	m.EnableZones()
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
