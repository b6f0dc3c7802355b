package console

import (
	"fmt"
	"io"
	"strings"

	"pullrefresh/internal/refresh"
	"pullrefresh/internal/replay"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// PrintHeader writes the replay banner and the layout it runs with.
func PrintHeader(w io.Writer, s *replay.Script) {
	fmt.Fprintf(w, "%s■ GESTURE REPLAY%s header=%d padding=%d footer=%v\n",
		colorCyan, colorReset, s.Layout.Header, s.Layout.Padding, s.Layout.Footer)
}

// PrintStep renders one replayed step on a single line.
func PrintStep(w io.Writer, r replay.Result) {
	label := r.Step.String()
	if len(label) > 20 {
		label = label[:17] + "..."
	}
	dots := strings.Repeat("·", 22-len([]rune(label)))

	marker := " "
	if r.Consumed {
		marker = "●"
	}
	fired := ""
	if r.Fired {
		fired = fmt.Sprintf(" %s⟳ refresh%s", colorGreen, colorReset)
	}

	s := r.Snapshot
	fmt.Fprintf(w, "%3d %s %s%s offset=%3d/%-3d %s%-10s%s%s\n",
		r.Index, marker, label, colorCyan+dots+colorReset,
		s.Offset, s.RestOffset,
		colorFor(s.State), s.State, colorReset, fired)
}

// PrintSummary writes the final state after a replay.
func PrintSummary(w io.Writer, s refresh.Snapshot) {
	fmt.Fprintf(w, "%s─ Summary%s: state=%s offset=%d threshold=%d refreshes=%d\n",
		colorCyan, colorReset, s.State, s.Offset, s.Threshold, s.Refreshes)
}

func colorFor(state refresh.State) string {
	switch state {
	case refresh.Pulling:
		return colorYellow
	case refresh.Refreshing:
		return colorGreen
	case refresh.Loading:
		return colorRed
	default:
		return colorReset
	}
}
