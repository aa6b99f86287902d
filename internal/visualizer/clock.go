package visualizer

import "time"

// AnimationSpec is the fixed cadence of one animation kind.
type AnimationSpec struct {
	Interval time.Duration
	Frames   int
}

var (
	SpinnerSpec = AnimationSpec{Interval: 80 * time.Millisecond, Frames: 10}
	PulseSpec   = AnimationSpec{Interval: 100 * time.Millisecond, Frames: 8}
	DotsSpec    = AnimationSpec{Interval: 150 * time.Millisecond, Frames: 6}
)

// Cycle returns the duration of one full pass through the frames.
func (s AnimationSpec) Cycle() time.Duration {
	return s.Interval * time.Duration(s.Frames)
}

// FrameIndex returns floor((now-anchor)/interval) mod frames. Times before
// the anchor and degenerate specs map to frame 0.
func FrameIndex(nowMs, anchorMs int64, spec AnimationSpec) int {
	interval := spec.Interval.Milliseconds()
	if interval <= 0 || spec.Frames <= 0 || nowMs <= anchorMs {
		return 0
	}
	return int(((nowMs - anchorMs) / interval) % int64(spec.Frames))
}

// Clock pins an animation spec to a start time.
type Clock struct {
	spec   AnimationSpec
	anchor time.Time
}

// NewClock starts a clock at anchor.
func NewClock(spec AnimationSpec, anchor time.Time) Clock {
	return Clock{spec: spec, anchor: anchor}
}

func (c Clock) Spec() AnimationSpec { return c.spec }
func (c Clock) Anchor() time.Time   { return c.anchor }

// Frame returns the frame index at now.
func (c Clock) Frame(now time.Time) int {
	return FrameIndex(now.UnixMilli(), c.anchor.UnixMilli(), c.spec)
}

// Restart moves the anchor to now.
func (c *Clock) Restart(now time.Time) {
	c.anchor = now
}
