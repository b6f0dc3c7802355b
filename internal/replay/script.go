// Package replay drives the refresh core from a scripted list of pointer
// events, so a gesture can be reproduced without a terminal.
package replay

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"pullrefresh/internal/refresh"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

// Script is the TOML replay file.
type Script struct {
	Layout Layout `toml:"layout"`
	Steps  []Step `toml:"event"`
}

type Layout struct {
	Header  int  `toml:"header"`
	Padding int  `toml:"padding"`
	Footer  bool `toml:"footer"`
}

// Step is one scripted event. Exactly one of Action, Complete or Load is
// set. AtTop overrides the content probe from this step on.
type Step struct {
	Action   string `toml:"action,omitempty"`
	Y        int    `toml:"y,omitempty"`
	AtTop    *bool  `toml:"at_top,omitempty"`
	Complete bool   `toml:"complete,omitempty"`
	Load     string `toml:"load,omitempty"` // "start" or "end"
}

// Result is the outcome of one step after any settle has finished.
type Result struct {
	Index    int
	Step     Step
	Consumed bool
	Fired    bool
	Snapshot refresh.Snapshot
}

func (s Step) String() string {
	switch {
	case s.Complete:
		return "complete"
	case s.Load != "":
		return "load " + s.Load
	default:
		return fmt.Sprintf("%s y=%d", s.Action, s.Y)
	}
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) Validate() error {
	if s.Layout.Header < 0 || s.Layout.Padding < 0 {
		return errors.New("layout sizes must not be negative")
	}
	if len(s.Steps) == 0 {
		return errors.New("script has no events")
	}
	for i, st := range s.Steps {
		set := 0
		if st.Action != "" {
			set++
			if _, err := ParseAction(st.Action); err != nil {
				return fmt.Errorf("event %d: %w", i+1, err)
			}
		}
		if st.Complete {
			set++
		}
		if st.Load != "" {
			set++
			if st.Load != "start" && st.Load != "end" {
				return fmt.Errorf("event %d: load must be \"start\" or \"end\", got %q", i+1, st.Load)
			}
		}
		if set != 1 {
			return fmt.Errorf("event %d: needs exactly one of action, complete or load", i+1)
		}
	}
	return nil
}

// ParseAction maps a script action name onto a pointer action.
func ParseAction(name string) (refresh.Action, error) {
	switch strings.ToLower(name) {
	case "down":
		return refresh.Down, nil
	case "move":
		return refresh.Move, nil
	case "up":
		return refresh.Up, nil
	case "cancel":
		return refresh.Cancel, nil
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Run plays the script against a fresh controller and calls emit after every
// step. Settles run to completion before emit sees the snapshot.
func Run(s *Script, logger *log.Logger, emit func(Result)) (refresh.Snapshot, error) {
	opts := []refresh.Option{refresh.WithLogger(logger)}
	if s.Layout.Footer {
		opts = append(opts, refresh.WithFooter())
	}
	ctrl := refresh.NewController(opts...)
	ctrl.SetLayout(s.Layout.Header, s.Layout.Padding)

	fired := false
	ctrl.SetOnRefreshing(func() { fired = true })

	atTop := true
	gesture := refresh.NewGesture(ctrl, refresh.ProbeFunc(func() bool { return atTop }))

	for i, st := range s.Steps {
		if st.AtTop != nil {
			atTop = *st.AtTop
		}
		fired = false
		res := Result{Index: i + 1, Step: st}

		switch {
		case st.Complete:
			ctrl.CompleteRefresh()
		case st.Load == "start":
			ctrl.StartLoading()
		case st.Load == "end":
			ctrl.CompleteLoading()
		default:
			action, err := ParseAction(st.Action)
			if err != nil {
				return ctrl.Snapshot(), fmt.Errorf("event %d: %w", i+1, err)
			}
			res.Consumed = gesture.Handle(refresh.Event{Action: action, Y: st.Y})
		}

		for ctrl.Animate() {
		}
		res.Fired = fired
		res.Snapshot = ctrl.Snapshot()
		if emit != nil {
			emit(res)
		}
	}
	return ctrl.Snapshot(), nil
}
