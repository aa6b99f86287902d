package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	springFrequency = 7.0
	springDamping   = 1.0
	// settleEpsilon snaps the spring onto its target once it is this close.
	settleEpsilon = 0.0005
)

// progressSpring eases the displayed progress toward the playback position
// so seeks glide instead of jumping.
type progressSpring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	primed bool
}

func newProgressSpring(tick time.Duration) progressSpring {
	fps := 30
	if tick > 0 {
		fps = max(1, int(math.Round(float64(time.Second)/float64(tick))))
	}
	return progressSpring{spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping)}
}

// step advances one tick toward target and returns the displayed value,
// always within [0,1].
func (s *progressSpring) step(target float64) float64 {
	if !s.primed {
		s.pos, s.vel, s.primed = target, 0, true
		return target
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	if math.Abs(target-s.pos) < settleEpsilon {
		s.pos, s.vel = target, 0
	}
	return min(max(s.pos, 0), 1)
}

// jump moves straight to target without easing.
func (s *progressSpring) jump(target float64) {
	s.pos, s.vel, s.primed = target, 0, true
}
