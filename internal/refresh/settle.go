package refresh

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// FrameInterval is the delay between settle frames the host should schedule.
const FrameInterval = time.Second / 60

const (
	defaultFrequency = 12.0
	defaultDamping   = 1.0
	maxSettleFrames  = 600
)

// settler animates the offset toward a target with a spring. It only
// produces positions; the controller decides what to do with them.
type settler struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target int
	frames int
	active bool
}

func newSettler(frequency, damping float64) settler {
	return settler{spring: harmonica.NewSpring(harmonica.FPS(60), frequency, damping)}
}

func (s *settler) start(from, to int) {
	s.pos = float64(from)
	s.vel = 0
	s.target = to
	s.frames = 0
	s.active = from != to
}

func (s *settler) stop() {
	s.active = false
	s.vel = 0
}

// step advances one frame and returns the rounded position.
func (s *settler) step() int {
	if !s.active {
		return s.target
	}
	s.frames++
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, float64(s.target))

	near := math.Abs(s.pos-float64(s.target)) < 0.5 && math.Abs(s.vel) < 1
	if near || s.frames >= maxSettleFrames {
		s.pos = float64(s.target)
		s.stop()
	}
	return int(math.Round(s.pos))
}
