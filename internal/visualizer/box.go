package visualizer

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// BoxKind selects one of the small animated icons drawn beside the bar.
type BoxKind uint8

const (
	BoxSpinner BoxKind = iota
	BoxPulse
	BoxDots
)

// DefaultBoxWidth is the number of cells every box frame occupies.
const DefaultBoxWidth = 5

func (k BoxKind) String() string {
	switch k {
	case BoxPulse:
		return "pulse"
	case BoxDots:
		return "dots"
	default:
		return "spinner"
	}
}

// Spec returns the frame cadence of the kind.
func (k BoxKind) Spec() AnimationSpec {
	switch k {
	case BoxPulse:
		return PulseSpec
	case BoxDots:
		return DotsSpec
	default:
		return SpinnerSpec
	}
}

type boxRow [DefaultBoxWidth]rune

// Each spinner row staggers the rotating braille frames across the box so
// the dots appear to chase each other.
var spinnerBox = buildSpinnerBox(spinner.MiniDot.Frames)

var pulseBox = [8]boxRow{
	{' ', ' ', '░', ' ', ' '},
	{' ', '░', '▒', '░', ' '},
	{'░', '▒', '▓', '▒', '░'},
	{'▒', '▓', '█', '▓', '▒'},
	{'▓', '█', '█', '█', '▓'},
	{'▒', '▓', '█', '▓', '▒'},
	{'░', '▒', '▓', '▒', '░'},
	{' ', '░', '▒', '░', ' '},
}

var dotsBox = [6]boxRow{
	{'·', ' ', ' ', ' ', ' '},
	{'·', '·', ' ', ' ', ' '},
	{'·', '·', '·', ' ', ' '},
	{' ', '·', '·', '·', ' '},
	{' ', ' ', '·', '·', '·'},
	{' ', ' ', ' ', '·', '·'},
}

func buildSpinnerBox(frames []string) [10]boxRow {
	var box [10]boxRow
	glyphs := make([]rune, 0, len(frames))
	for _, f := range frames {
		for _, r := range f {
			glyphs = append(glyphs, r)
			break
		}
	}
	if len(glyphs) == 0 {
		glyphs = []rune{'⠋'}
	}
	for f := range box {
		for i := range box[f] {
			box[f][i] = glyphs[(f+i*2)%len(glyphs)]
		}
	}
	return box
}

func boxFrame(kind BoxKind, frame int) boxRow {
	switch kind {
	case BoxPulse:
		return pulseBox[frame%len(pulseBox)]
	case BoxDots:
		return dotsBox[frame%len(dotsBox)]
	default:
		return spinnerBox[frame%len(spinnerBox)]
	}
}

// RenderBox returns the glyphs of a box at nowMs for an animation that
// started at anchorMs.
func RenderBox(kind BoxKind, nowMs, anchorMs int64) []rune {
	row := boxFrame(kind, FrameIndex(nowMs, anchorMs, kind.Spec()))
	return row[:]
}

// BoxAnimator is a box kind bound to its own clock.
type BoxAnimator struct {
	kind  BoxKind
	clock Clock
}

// NewBoxAnimator starts an animator at anchor.
func NewBoxAnimator(kind BoxKind, anchor time.Time) *BoxAnimator {
	return &BoxAnimator{kind: kind, clock: NewClock(kind.Spec(), anchor)}
}

func (b *BoxAnimator) Kind() BoxKind { return b.kind }

// Frame returns the current frame index.
func (b *BoxAnimator) Frame(now time.Time) int {
	return b.clock.Frame(now)
}

// Restart re-anchors the animation at now.
func (b *BoxAnimator) Restart(now time.Time) {
	b.clock.Restart(now)
}

// Render returns one cell per box column. Visible glyphs are tinted by
// walking g as the animation advances.
func (b *BoxAnimator) Render(now time.Time, g Gradient) []Cell {
	frame := b.Frame(now)
	row := boxFrame(b.kind, frame)
	frames := b.kind.Spec().Frames
	t := 0.0
	if frames > 1 {
		t = float64(frame) / float64(frames-1)
	}
	fg := g.At(t)

	cells := make([]Cell, len(row))
	for i, r := range row {
		cells[i] = Cell{Glyph: r}
		if r != ' ' {
			cells[i].Fg = fg
		}
	}
	return cells
}
