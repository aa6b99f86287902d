package visualizer

import (
	"math"
	"time"
)

const (
	// DefaultRingSpacing is used by RingRadius for a non-positive spacing.
	DefaultRingSpacing   = 5.0
	minRingSpacing       = 1.0
	DefaultRingThickness = 1.0

	// ConcentricFPS is the target redraw rate of the ring pane. Rings move
	// slower than the bar, so the host can redraw them less often.
	ConcentricFPS = 20

	minRingIntensity = 0.35
)

// depthGlyphs run nearest (densest) to farthest.
var depthGlyphs = [4]rune{'●', '◉', '○', '·'}

// DepthGlyph returns the glyph for ring k; rings beyond the table reuse the
// farthest glyph.
func DepthGlyph(k int) rune {
	if k < 0 {
		k = 0
	}
	if k >= len(depthGlyphs) {
		k = len(depthGlyphs) - 1
	}
	return depthGlyphs[k]
}

// BeatPhase returns the position inside the current beat, in [0, 1). One
// ring expansion cycle spans one beat. Non-positive or non-finite tempo
// freezes the rings at phase 0.
func BeatPhase(elapsedMs, bpm float64) float64 {
	if math.IsNaN(bpm) || math.IsInf(bpm, 0) || bpm <= 0 {
		return 0
	}
	if math.IsNaN(elapsedMs) || elapsedMs < 0 {
		return 0
	}
	return frac(elapsedMs / 1000 * bpm / 60)
}

// RingRadius is (k + phase) * spacing. It is never negative.
func RingRadius(k int, phase, spacing float64) float64 {
	if k < 0 {
		k = 0
	}
	if math.IsNaN(spacing) || spacing <= 0 {
		spacing = DefaultRingSpacing
	}
	return (float64(k) + clamp01(phase)) * spacing
}

// ConcentricWaves draws rings expanding from the center of an area in time
// with the music.
type ConcentricWaves struct {
	// Spacing is the distance between rings. Zero fits one ring per depth
	// glyph into the shorter dimension of the area.
	Spacing   float64
	Thickness float64
	Scheme    Scheme
}

// NewConcentricWaves returns an engine whose spacing follows the area.
func NewConcentricWaves(scheme Scheme) *ConcentricWaves {
	return &ConcentricWaves{
		Thickness: DefaultRingThickness,
		Scheme:    scheme,
	}
}

// FrameInterval is the minimum time between two redraws.
func (c *ConcentricWaves) FrameInterval() time.Duration {
	return time.Second / ConcentricFPS
}

// ringReach is the radius that fits the shorter dimension. Row distances
// count double to make up for tall terminal cells.
func ringReach(cols, rows int) float64 {
	return math.Min(float64(max(cols, 1)), float64(max(rows, 1))*2) / 2
}

// SpacingFor returns the ring spacing used for a cols x rows area.
func (c *ConcentricWaves) SpacingFor(cols, rows int) float64 {
	if c.Spacing > 0 && !math.IsInf(c.Spacing, 0) {
		return c.Spacing
	}
	return math.Max(ringReach(cols, rows)/float64(len(depthGlyphs)), minRingSpacing)
}

func (c *ConcentricWaves) thickness() float64 {
	if math.IsNaN(c.Thickness) || c.Thickness <= 0 {
		return DefaultRingThickness
	}
	return c.Thickness
}

// RingCount returns how many rings fit the shorter dimension of the area.
func (c *ConcentricWaves) RingCount(cols, rows int) int {
	return int(ringReach(cols, rows)/c.SpacingFor(cols, rows)) + 1
}

// Palette returns the depth scheme in use: derived from base when present,
// otherwise the configured fallback scheme.
func (c *ConcentricWaves) Palette(base *RGB) Gradient {
	if base != nil {
		return AlbumScheme(*base)
	}
	return c.Scheme.Gradient()
}

// Render draws the rings for one tick.
func (c *ConcentricWaves) Render(cols, rows int, bpm, elapsedMs float64, base *RGB) *Grid {
	g := NewGrid(cols, rows)
	palette := c.Palette(base)
	phase := BeatPhase(elapsedMs, bpm)
	spacing := c.SpacingFor(g.Width, g.Height)
	thickness := c.thickness()
	rings := c.RingCount(g.Width, g.Height)

	cx := float64(g.Width-1) / 2
	cy := float64(g.Height-1) / 2

	for y := range g.Height {
		dy := (float64(y) - cy) * 2
		for x := range g.Width {
			dx := float64(x) - cx
			dist := math.Hypot(dx, dy)

			k := int(math.Round(dist/spacing - phase))
			if k < 0 {
				k = 0
			}
			if k >= rings {
				k = rings - 1
			}
			off := math.Abs(dist - RingRadius(k, phase, spacing))
			if off >= thickness {
				continue
			}

			intensity := math.Max(1-off/thickness, minRingIntensity)
			depth := min(k, len(depthGlyphs)-1)
			g.Set(x, y, Cell{
				Glyph: DepthGlyph(depth),
				Fg:    depthColor(palette, depth).Scale(intensity),
			})
		}
	}
	return g
}

func depthColor(g Gradient, depth int) RGB {
	if len(g.Stops) == 0 {
		return RGB{}
	}
	if depth >= len(g.Stops) {
		return g.Stops[len(g.Stops)-1]
	}
	return g.Stops[depth]
}
