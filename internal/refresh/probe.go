package refresh

// TopProbe reports whether the wrapped content is scrolled to its top edge.
// Implementations are called on every move event and must not block or
// mutate the content.
type TopProbe interface {
	AtTop() bool
}

// EdgeProbe adds the bottom edge, needed only by footer variants.
type EdgeProbe interface {
	TopProbe
	AtBottom() bool
}

// ProbeFunc adapts a plain function to TopProbe.
type ProbeFunc func() bool

func (f ProbeFunc) AtTop() bool { return f() }

// StaticProbe answers with fixed values. Content that cannot scroll, such as
// a single block of text, is always at both edges.
type StaticProbe struct {
	Top    bool
	Bottom bool
}

func (p StaticProbe) AtTop() bool    { return p.Top }
func (p StaticProbe) AtBottom() bool { return p.Bottom }
