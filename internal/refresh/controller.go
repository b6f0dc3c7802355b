package refresh

import (
	"github.com/charmbracelet/log"
)

// Option configures a Controller.
type Option func(*Controller)

// WithFooter enables the Loading state used by footer variants.
func WithFooter() Option {
	return func(c *Controller) {
		c.footer = true
	}
}

// WithSpring overrides the settle spring. Damping below 1 lets the header
// bounce; offsets are clamped either way.
func WithSpring(frequency, damping float64) Option {
	return func(c *Controller) {
		if frequency > 0 && damping > 0 {
			c.settle = newSettler(frequency, damping)
		}
	}
}

// WithLogger reports state transitions at debug level.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// Controller owns the scroll offset, the refresh state and the listener.
// It is not safe for concurrent use; hosts call it from their event loop.
type Controller struct {
	offset    int
	rest      int
	padding   int
	threshold int

	state     State
	committed bool // a released refresh is waiting for CompleteRefresh
	refreshes int
	footer    bool

	listener Listener
	settle   settler
	logger   *log.Logger
}

func NewController(opts ...Option) *Controller {
	c := &Controller{
		settle: newSettler(defaultFrequency, defaultDamping),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// SetLayout is called whenever the header is measured. The rest offset is
// the header height plus the top padding and the threshold is always half
// of it.
func (c *Controller) SetLayout(headerHeight, topPadding int) {
	if headerHeight < 0 {
		headerHeight = 0
	}
	if topPadding < 0 {
		topPadding = 0
	}
	c.padding = topPadding
	c.rest = headerHeight + topPadding
	c.threshold = c.rest / 2

	if c.state == Idle {
		if c.settle.active {
			c.settle.target = c.rest
		} else {
			c.offset = c.rest
		}
	}
	if c.settle.target > c.rest {
		c.settle.target = c.rest
	}
	c.offset = c.clamp(c.offset)
	c.debug("layout", "rest", c.rest, "threshold", c.threshold, "offset", c.offset)
}

// ApplyDelta moves the header by a pointer delta. A positive delta is the
// finger moving down, which reveals the header and lowers the offset. The
// result never leaves [topPadding, restOffset] while dragging down and never
// exceeds restOffset while dragging up. It returns the part of delta that
// was applied.
func (c *Controller) ApplyDelta(delta int) int {
	if delta == 0 {
		return 0
	}
	c.settle.stop()

	cur := c.offset
	next := cur - delta
	if delta > 0 {
		lower := c.padding
		if cur < lower {
			lower = cur
		}
		if next < lower {
			next = lower
		}
	} else if next > c.rest {
		next = c.rest
	}
	c.offset = c.clamp(next)
	c.updateDragState()
	return cur - c.offset
}

// updateDragState labels a drag step. Whether a release would refresh is
// decided by Armed against the threshold, not by this label.
func (c *Controller) updateDragState() {
	if c.state == Loading || c.committed {
		return
	}
	next := Pulling
	switch {
	case c.offset >= c.rest:
		next = Idle
	case c.offset <= c.padding:
		next = Refreshing
	}
	c.setState(next)
}

// Release commits the drag. Past the threshold the header settles fully
// open, the state becomes Refreshing and the listener runs once; otherwise
// the header settles back to rest and the state becomes Idle. It reports
// whether this release started a refresh.
func (c *Controller) Release() bool {
	switch {
	case c.state == Loading:
		return false
	case c.committed:
		c.settleTo(0)
		return false
	case c.offset < c.threshold:
		c.settleTo(0)
		c.committed = true
		c.refreshes++
		c.setState(Refreshing)
		if c.listener != nil {
			c.listener()
		}
		return true
	default:
		c.settleTo(c.rest)
		c.setState(Idle)
		return false
	}
}

// CompleteRefresh ends a committed refresh and hides the header. Calls in
// any other state are ignored.
func (c *Controller) CompleteRefresh() {
	if c.state != Refreshing || !c.committed {
		return
	}
	c.committed = false
	c.setState(Idle)
	c.settleTo(c.rest)
}

// SetOnRefreshing replaces the listener. Nil removes it.
func (c *Controller) SetOnRefreshing(l Listener) {
	c.listener = l
}

// StartLoading enters Loading from Idle. It needs WithFooter.
func (c *Controller) StartLoading() bool {
	if !c.footer || c.state != Idle {
		return false
	}
	c.setState(Loading)
	return true
}

// CompleteLoading leaves Loading. It needs WithFooter.
func (c *Controller) CompleteLoading() bool {
	if !c.footer || c.state != Loading {
		return false
	}
	c.setState(Idle)
	return true
}

// Interrupt stops a running settle at the current offset.
func (c *Controller) Interrupt() {
	if c.settle.active {
		c.debug("settle interrupted", "offset", c.offset, "target", c.settle.target)
	}
	c.settle.stop()
}

// Resume settles an interrupted offset back to where the current state
// rests: fully open for a committed refresh, hidden otherwise. An
// uncommitted drag label falls back to Idle.
func (c *Controller) Resume() {
	target := c.rest
	if c.committed {
		target = 0
	}
	if !c.committed && c.state != Loading {
		c.setState(Idle)
	}
	if c.offset == target && !c.settle.active {
		return
	}
	c.settleTo(target)
}

// Animate advances a running settle by one frame and reports whether it is
// still running.
func (c *Controller) Animate() bool {
	if !c.settle.active {
		return false
	}
	c.offset = c.clamp(c.settle.step())
	return c.settle.active
}

func (c *Controller) settleTo(target int) {
	c.settle.start(c.offset, c.clamp(target))
	if !c.settle.active {
		c.offset = c.settle.target
	}
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	c.debug("state", "from", c.state, "to", s, "offset", c.offset)
	c.state = s
}

func (c *Controller) clamp(y int) int {
	if y > c.rest {
		y = c.rest
	}
	if y < 0 {
		y = 0
	}
	return y
}

func (c *Controller) debug(msg string, keyvals ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, keyvals...)
	}
}

func (c *Controller) Offset() int     { return c.offset }
func (c *Controller) RestOffset() int { return c.rest }
func (c *Controller) Threshold() int  { return c.threshold }
func (c *Controller) TopPadding() int { return c.padding }
func (c *Controller) State() State    { return c.state }
func (c *Controller) Settling() bool  { return c.settle.active }
func (c *Controller) Footer() bool    { return c.footer }

// Target is where the current settle ends, or the offset when idle.
func (c *Controller) Target() int {
	if c.settle.active {
		return c.settle.target
	}
	return c.offset
}

// Committed reports whether a released refresh is waiting for
// CompleteRefresh, as opposed to a drag that is merely fully open.
func (c *Controller) Committed() bool { return c.committed }

// Armed reports whether releasing now would start a refresh, that is whether
// the offset is below the threshold (more than half the header revealed).
func (c *Controller) Armed() bool { return c.offset < c.threshold }

// Refreshes counts committed refresh cycles.
func (c *Controller) Refreshes() int { return c.refreshes }

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Offset:     c.offset,
		RestOffset: c.rest,
		Threshold:  c.threshold,
		State:      c.state,
		Committed:  c.committed,
		Armed:      c.Armed(),
		Settling:   c.settle.active,
		Refreshes:  c.refreshes,
	}
}
