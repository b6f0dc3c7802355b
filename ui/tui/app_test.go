package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pullrefresh/internal/collector"
	"pullrefresh/internal/config"
	"pullrefresh/internal/history"
	"pullrefresh/internal/refresh"
	"pullrefresh/ui/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockStatsProvider for testing
type MockStatsProvider struct {
	err   error
	calls int
}

func (m *MockStatsProvider) Snapshot(ctx context.Context) (*collector.Snapshot, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &collector.Snapshot{
		Hostname:   "testbox",
		CPUUsage:   42,
		CPUPerCore: []float64{40, 44},
		CPUCores:   2,
		RAMUsage:   55,
	}, nil
}

type memRecorder struct {
	cycles []history.Cycle
}

func (r *memRecorder) Record(ctx context.Context, c history.Cycle) error {
	c.ID = int64(len(r.cycles) + 1)
	r.cycles = append([]history.Cycle{c}, r.cycles...)
	return nil
}

func (r *memRecorder) Recent(ctx context.Context, n int) ([]history.Cycle, error) {
	if n > len(r.cycles) {
		n = len(r.cycles)
	}
	return r.cycles[:n], nil
}

func newTestModel(t *testing.T, cfg config.Config, provider collector.StatsProvider, rec history.Recorder) *MainModel {
	t.Helper()
	m := InitialModel(provider, cfg, rec)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		if c != nil {
			out = append(out, c())
		}
	}
	return out
}

func findMsg[T any](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v
		}
	}
	var zero T
	t.Fatalf("no %T among %d messages", zero, len(msgs))
	return zero
}

func pullToRefresh(m *MainModel) tea.Cmd {
	m.Update(tea.MouseMsg{Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{Y: 6, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	_, cmd := m.Update(tea.MouseMsg{Y: 6, Action: tea.MouseActionRelease})
	return cmd
}

func TestInitLoadsFirstSnapshot(t *testing.T) {
	provider := &MockStatsProvider{}
	m := newTestModel(t, config.Default(), provider, nil)

	msg := findMsg[MetricsLoadedMsg](t, runCmd(m.Init()))
	assert.False(t, msg.Pulled)

	_, cmd := m.Update(msg)
	assert.Nil(t, cmd)
	require.NotNil(t, m.state.Snapshot)
	assert.Equal(t, "testbox", m.state.Snapshot.Hostname)
	assert.NotEmpty(t, m.state.Results)
	assert.Contains(t, m.report.View(), "testbox")
}

func TestWindowSizeLayout(t *testing.T) {
	m := newTestModel(t, config.Default(), &MockStatsProvider{}, nil)

	ctrl := m.pull.Controller()
	assert.Equal(t, 4, ctrl.RestOffset())
	assert.Equal(t, 2, ctrl.Threshold())
	assert.Equal(t, 4, ctrl.Offset())
	assert.Len(t, strings.Split(m.View(), "\n"), 24)
}

func TestPullRefreshCycle(t *testing.T) {
	provider := &MockStatsProvider{}
	rec := &memRecorder{}
	m := newTestModel(t, config.Default(), provider, rec)

	cmd := pullToRefresh(m)
	require.NotNil(t, cmd)
	assert.Equal(t, refresh.Refreshing, m.pull.Controller().State())

	loaded := findMsg[MetricsLoadedMsg](t, runCmd(cmd))
	assert.True(t, loaded.Pulled)
	assert.Equal(t, 1, provider.calls)

	_, cmd = m.Update(loaded)
	assert.Equal(t, refresh.Idle, m.pull.Controller().State())
	assert.False(t, m.pull.LastRefresh().IsZero())

	hist := findMsg[HistoryLoadedMsg](t, runCmd(cmd))
	require.NoError(t, hist.Err)
	m.Update(hist)
	require.Len(t, m.state.History, 1)
	assert.True(t, m.state.History[0].OK)
	assert.Equal(t, 42.0, m.state.History[0].CPUPct)
	assert.Contains(t, m.report.View(), "Recent refreshes")
}

func TestFailedRefreshIsRecorded(t *testing.T) {
	provider := &MockStatsProvider{err: errors.New("all sensors failed")}
	rec := &memRecorder{}
	m := newTestModel(t, config.Default(), provider, rec)

	loaded := findMsg[MetricsLoadedMsg](t, runCmd(pullToRefresh(m)))
	_, cmd := m.Update(loaded)
	assert.EqualError(t, m.state.Err, "all sensors failed")
	assert.Equal(t, refresh.Idle, m.pull.Controller().State())

	m.Update(findMsg[HistoryLoadedMsg](t, runCmd(cmd)))
	require.Len(t, rec.cycles, 1)
	assert.False(t, rec.cycles[0].OK)
	assert.Equal(t, "all sensors failed", rec.cycles[0].Err)
}

func TestRefreshWithoutHistory(t *testing.T) {
	m := newTestModel(t, config.Default(), &MockStatsProvider{}, nil)

	loaded := findMsg[MetricsLoadedMsg](t, runCmd(pullToRefresh(m)))
	_, cmd := m.Update(loaded)
	for _, msg := range runCmd(cmd) {
		_, isHistory := msg.(HistoryLoadedMsg)
		assert.False(t, isHistory)
	}
	assert.Empty(t, m.state.History)
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, config.Default(), &MockStatsProvider{}, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Equal(t, "Bye!\n", m.View())
}

func TestLoadKey(t *testing.T) {
	cfg := config.Default()
	m := newTestModel(t, cfg, &MockStatsProvider{}, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	assert.Nil(t, cmd)
	assert.Equal(t, refresh.Idle, m.pull.Controller().State())

	cfg.Pull.Footer = true
	m = newTestModel(t, cfg, &MockStatsProvider{}, nil)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	require.NotNil(t, cmd)
	assert.Equal(t, refresh.Loading, m.pull.Controller().State())

	m.Update(findMsg[components.LoadDoneMsg](t, runCmd(cmd)))
	assert.Equal(t, refresh.Idle, m.pull.Controller().State())
}
