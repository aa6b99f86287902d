package visualizer

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel foreground color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Scale multiplies every channel by f, clamped to [0,1].
func (c RGB) Scale(f float64) RGB {
	f = clamp01(f)
	return RGB{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

// ParseHex parses "#rrggbb" (or the short "#rgb" form) into an RGB.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, err
	}
	return fromColorful(c), nil
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// frac returns the fractional part of v in [0,1). Non-finite input yields 0.
func frac(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	f := v - math.Floor(v)
	if f >= 1 {
		return 0
	}
	return f
}

func lerpColor(a, b RGB, t float64) RGB {
	t = clamp01(t)
	return RGB{
		R: uint8(math.Round(float64(a.R) + (float64(b.R)-float64(a.R))*t)),
		G: uint8(math.Round(float64(a.G) + (float64(b.G)-float64(a.G))*t)),
		B: uint8(math.Round(float64(a.B) + (float64(b.B)-float64(a.B))*t)),
	}
}

// Gradient is an ordered list of color stops spread evenly over [0,1].
type Gradient struct {
	Name  string
	Stops []RGB
}

// At returns the color at phase. Phase is clamped to [0,1]; the first and
// last stops are returned exactly at the ends.
func (g Gradient) At(phase float64) RGB {
	n := len(g.Stops)
	switch n {
	case 0:
		return RGB{}
	case 1:
		return g.Stops[0]
	}
	phase = clamp01(phase)
	pos := phase * float64(n-1)
	i := int(math.Floor(pos))
	if i >= n-1 {
		return g.Stops[n-1]
	}
	return lerpColor(g.Stops[i], g.Stops[i+1], pos-float64(i))
}

var (
	brightCyan   = RGB{R: 0, G: 255, B: 255}
	blue         = RGB{R: 0, G: 0, B: 255}
	brightOrange = RGB{R: 255, G: 140, B: 0}
	darkRed      = RGB{R: 139, G: 0, B: 0}
	magenta      = RGB{R: 255, G: 0, B: 255}
	green        = RGB{R: 0, G: 255, B: 0}

	neutralBar = RGB{R: 190, G: 190, B: 190}
	dimTrack   = RGB{R: 88, G: 88, B: 96}
)

// Per-effect palettes are high-contrast two-stop gradients.
var (
	CirclesGradient   = Gradient{Name: "circles", Stops: []RGB{brightCyan, blue}}
	SquaresGradient   = Gradient{Name: "squares", Stops: []RGB{brightOrange, darkRed}}
	TrianglesGradient = Gradient{Name: "triangles", Stops: []RGB{magenta, green}}
	NeutralGradient   = Gradient{Name: "neutral", Stops: []RGB{neutralBar, neutralBar}}
)

// AlbumPalette spreads one base color into a six-stop gradient: the base,
// its complement, two analogous channel mixes, and a lighter and darker
// variant.
func AlbumPalette(base RGB) Gradient {
	r, g, b := float64(base.R), float64(base.G), float64(base.B)
	mix := func(v float64) uint8 { return uint8(math.Min(v, 255)) }
	return Gradient{
		Name: "album",
		Stops: []RGB{
			base,
			{R: 255 - base.R, G: 255 - base.G, B: 255 - base.B},
			{R: mix(r*0.8 + g*0.2), G: mix(g*0.8 + b*0.2), B: mix(b*0.8 + r*0.2)},
			{R: mix(r*0.2 + b*0.8), G: mix(g*0.2 + r*0.8), B: mix(b*0.2 + g*0.8)},
			{R: satAdd(base.R, 60), G: satAdd(base.G, 60), B: satAdd(base.B, 60)},
			{R: satSub(base.R, 60), G: satSub(base.G, 60), B: satSub(base.B, 60)},
		},
	}
}

func satAdd(v, d uint8) uint8 {
	if int(v)+int(d) > 255 {
		return 255
	}
	return v + d
}

func satSub(v, d uint8) uint8 {
	if d > v {
		return 0
	}
	return v - d
}

// EffectEngine turns elapsed time and playback progress into a color phase,
// so coloring animates over time while drifting with the playback position.
type EffectEngine struct {
	PeriodMs       float64
	ProgressWeight float64
}

// DefaultEffectEngine cycles colors every two seconds.
var DefaultEffectEngine = EffectEngine{PeriodMs: 2000, ProgressWeight: 0.5}

// Phase returns frac(elapsed/period + progress*weight).
func (e EffectEngine) Phase(elapsedMs, progress float64) float64 {
	period := e.PeriodMs
	if period <= 0 || math.IsNaN(period) {
		period = DefaultEffectEngine.PeriodMs
	}
	if math.IsNaN(elapsedMs) || elapsedMs < 0 {
		elapsedMs = 0
	}
	return frac(elapsedMs/period + clamp01(progress)*e.ProgressWeight)
}

// pingPong folds a looping phase onto [0,1] and back so that a two-stop
// gradient has no seam where the phase wraps.
func pingPong(phase float64) float64 {
	return 1 - math.Abs(2*frac(phase)-1)
}
