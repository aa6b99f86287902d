package playback

import (
	"sync/atomic"
	"time"

	"github.com/olivier-w/wavebar/internal/visualizer"
)

// staleAfter is how old a snapshot may get before renderers treat it as
// missing.
const staleAfter = 2 * time.Second

// Snapshot is the playback state at one instant. Values are never mutated
// after publication.
type Snapshot struct {
	Position  time.Duration
	Duration  time.Duration
	Paused    bool
	BPM       float64
	BaseColor *visualizer.RGB
	Title     string
	Taken     time.Time
}

// Progress returns Position/Duration clamped to [0,1]. Unknown durations
// report 0.
func (s Snapshot) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	p := float64(s.Position) / float64(s.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Input converts the snapshot into renderer input. Progress and elapsed
// time come from the same instant, so they can never disagree.
func (s Snapshot) Input(now time.Time) visualizer.Input {
	in := visualizer.Input{
		Progress:  s.Progress(),
		ElapsedMs: float64(s.Position.Milliseconds()),
		Now:       now,
		BPM:       s.BPM,
		Stale:     s.Taken.IsZero() || now.Sub(s.Taken) > staleAfter,
	}
	if s.BaseColor != nil {
		c := *s.BaseColor
		in.BaseColor = &c
	}
	return in
}

// State holds the latest snapshot. Publishers must be serialized, which the
// Transport does under its lock; any number of readers load without blocking.
type State struct {
	cur atomic.Pointer[Snapshot]
}

// Publish replaces the current snapshot.
func (s *State) Publish(snap Snapshot) {
	if snap.BaseColor != nil {
		c := *snap.BaseColor
		snap.BaseColor = &c
	}
	s.cur.Store(&snap)
}

// Load returns the current snapshot and whether one has been published.
func (s *State) Load() (Snapshot, bool) {
	p := s.cur.Load()
	if p == nil {
		return Snapshot{}, false
	}
	return *p, true
}
