package refresh

// Gesture decides who owns a pointer drag, the container or its content,
// and turns pointer motion into controller deltas.
type Gesture struct {
	ctrl  *Controller
	probe TopProbe

	lastY   int
	session bool // between down and up/cancel
	owned   bool // the container claimed the current drag
}

// NewGesture binds a controller to the content's edge probe. A nil probe is
// treated as content that is always at its top edge.
func NewGesture(ctrl *Controller, probe TopProbe) *Gesture {
	if probe == nil {
		probe = StaticProbe{Top: true, Bottom: true}
	}
	return &Gesture{ctrl: ctrl, probe: probe}
}

// ShouldIntercept is asked for every event before the content sees it.
// Only a downward move while the content sits at its top edge is claimed.
func (g *Gesture) ShouldIntercept(ev Event) bool {
	claim, _ := g.intercept(ev)
	return claim
}

func (g *Gesture) intercept(ev Event) (bool, int) {
	switch ev.Action {
	case Down:
		g.lastY = ev.Y
		g.session = true
		g.ctrl.Interrupt()
	case Move:
		if !g.session {
			// Motion without a press: start tracking from here.
			g.lastY = ev.Y
			g.session = true
			return false, 0
		}
		delta := ev.Y - g.lastY
		g.lastY = ev.Y
		if delta > 0 && g.probe.AtTop() {
			return true, delta
		}
	}
	return false, 0
}

// OnMove handles a move of a claimed drag and returns the pointer delta.
// While loading the header does not follow the pointer.
func (g *Gesture) OnMove(ev Event) int {
	delta := ev.Y - g.lastY
	g.lastY = ev.Y
	if g.ctrl.State() != Loading {
		g.ctrl.ApplyDelta(delta)
	}
	return delta
}

// OnRelease finishes the drag. Without a drag in progress it does nothing.
// It reports whether the release started a refresh.
func (g *Gesture) OnRelease() bool {
	if !g.session {
		return false
	}
	g.session = false
	g.owned = false
	return g.ctrl.Release()
}

// Handle routes one event and reports whether the container consumed it.
// Events it does not consume belong to the content.
func (g *Gesture) Handle(ev Event) bool {
	if g.owned {
		switch ev.Action {
		case Move:
			g.OnMove(ev)
			return true
		case Up, Cancel:
			g.OnRelease()
			return true
		case Down:
			// The previous release never arrived.
			g.OnRelease()
		}
	}

	switch ev.Action {
	case Up, Cancel:
		// A press may have stopped a settle; put the header back.
		if g.session {
			g.session = false
			g.ctrl.Resume()
		}
		return false
	}

	claim, delta := g.intercept(ev)
	if !claim {
		return false
	}
	g.owned = true
	if g.ctrl.State() != Loading {
		g.ctrl.ApplyDelta(delta)
	}
	return true
}

// Dragging reports whether a pointer is down.
func (g *Gesture) Dragging() bool { return g.session }

// Owned reports whether the container owns the current drag.
func (g *Gesture) Owned() bool { return g.owned }

func (g *Gesture) Controller() *Controller { return g.ctrl }
