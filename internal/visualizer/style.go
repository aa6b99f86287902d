package visualizer

import "strings"

// Style selects how the progress bar is drawn.
type Style uint8

const (
	StyleClassic Style = iota
	StyleSineWave
)

// DefaultStyle is used when configuration names an unknown style.
const DefaultStyle = StyleSineWave

// Toggle switches between the classic and sine-wave bar.
func (s Style) Toggle() Style {
	if s == StyleSineWave {
		return StyleClassic
	}
	return StyleSineWave
}

func (s Style) String() string {
	if s == StyleSineWave {
		return "sine_wave"
	}
	return "classic"
}

// ParseStyle resolves a configuration name such as "classic" or
// "sine_wave". Unknown names return DefaultStyle and false.
func ParseStyle(name string) (Style, bool) {
	switch normalizeName(name) {
	case "classic":
		return StyleClassic, true
	case "sinewave", "sine", "wave":
		return StyleSineWave, true
	}
	return DefaultStyle, false
}

// Effect is the shape variant drawn by the sine-wave bar. Exactly one is
// active at a time.
type Effect uint8

const (
	EffectNone Effect = iota
	EffectCircles
	EffectSquares
	EffectTriangles
)

// DefaultEffect is used when configuration names an unknown effect.
const DefaultEffect = EffectCircles

// Next cycles Circles → Squares → Triangles → None → Circles.
func (e Effect) Next() Effect {
	switch e {
	case EffectCircles:
		return EffectSquares
	case EffectSquares:
		return EffectTriangles
	case EffectTriangles:
		return EffectNone
	default:
		return EffectCircles
	}
}

func (e Effect) String() string {
	switch e {
	case EffectCircles:
		return "circles"
	case EffectSquares:
		return "squares"
	case EffectTriangles:
		return "triangles"
	default:
		return "none"
	}
}

// ParseEffect resolves a configuration name. Unknown names return
// DefaultEffect and false.
func ParseEffect(name string) (Effect, bool) {
	switch normalizeName(name) {
	case "none", "off":
		return EffectNone, true
	case "circles", "circle":
		return EffectCircles, true
	case "squares", "square":
		return EffectSquares, true
	case "triangles", "triangle":
		return EffectTriangles, true
	}
	return DefaultEffect, false
}

// Wave returns the sampler shape of the effect.
func (e Effect) Wave() Wave {
	switch e {
	case EffectCircles:
		return WaveSine
	case EffectSquares:
		return WaveSquare
	case EffectTriangles:
		return WaveTriangle
	default:
		return WaveFlat
	}
}

// Gradient returns the fixed palette of the effect.
func (e Effect) Gradient() Gradient {
	switch e {
	case EffectCircles:
		return CirclesGradient
	case EffectSquares:
		return SquaresGradient
	case EffectTriangles:
		return TrianglesGradient
	default:
		return NeutralGradient
	}
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}
