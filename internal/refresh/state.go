// Package refresh implements the gesture and scroll-offset logic behind a
// pull-to-refresh container. It has no rendering code: a host feeds it pointer
// events and layout sizes, and reads back the offset and state to draw.
//
// Offsets count rows from the top of the stacked layout (padding, header,
// content, footer). An offset equal to RestOffset hides the header; an offset
// of 0 shows it completely.
package refresh

// State is the container's refresh state. Exactly one is active at a time.
type State int

const (
	Idle State = iota
	Pulling
	Refreshing
	Loading // footer variant only
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pulling:
		return "pulling"
	case Refreshing:
		return "refreshing"
	case Loading:
		return "loading"
	default:
		return "unknown"
	}
}

// Action is the phase of a pointer event.
type Action int

const (
	Down Action = iota
	Move
	Up
	Cancel
)

func (a Action) String() string {
	switch a {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Event is one pointer event. Y is the absolute pointer row, not relative to
// the container.
type Event struct {
	Action Action
	Y      int
}

// Listener is called when a pull is released far enough to refresh.
type Listener func()

// Snapshot is a copy of the controller's observable values.
type Snapshot struct {
	Offset     int
	RestOffset int
	Threshold  int
	State      State
	Committed  bool
	Armed      bool
	Settling   bool
	Refreshes  int
}
