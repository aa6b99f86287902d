package visualizer

import "math"

// Wave selects the shape function used to displace the progress line.
type Wave uint8

const (
	WaveFlat Wave = iota
	WaveSine
	WaveSquare
	WaveTriangle
)

func (w Wave) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveTriangle:
		return "triangle"
	default:
		return "flat"
	}
}

const (
	// colsPerPeriod is the width of one wave period at comfortable sizes.
	colsPerPeriod = 20
	// amplitudeFill is the share of the half-height a wave may swing through.
	amplitudeFill = 0.8
)

// Sample evaluates a unit wave at horizontal position x with scroll phase.
// The result is in [-1, 1]; non-finite input yields 0.
func Sample(w Wave, x, phase float64) float64 {
	return Sampler{Wave: w, Amplitude: 1, Frequency: 1}.Sample(x, phase)
}

// Sampler is a wave with a fixed amplitude and number of periods across
// x in [0, 1].
type Sampler struct {
	Wave      Wave
	Amplitude float64
	Frequency float64
}

// SamplerFor fits a wave to an area of cols x rows character cells: a whole
// number of periods across the width and an amplitude that stays inside the
// available dot rows. Narrow areas degrade to a single period.
func SamplerFor(w Wave, cols, rows int) Sampler {
	if rows < 1 {
		rows = 1
	}
	periods := math.Round(float64(cols) / colsPerPeriod)
	if periods < 1 {
		periods = 1
	}
	half := float64(rows*4-1) / 2
	return Sampler{Wave: w, Amplitude: half * amplitudeFill, Frequency: periods}
}

// Ramp returns the position within the current period, in [0, 1).
func (s Sampler) Ramp(x, phase float64) float64 {
	return frac(x*s.Frequency + phase)
}

// Sample returns the vertical displacement at x in [0, 1] for the given
// scroll phase.
func (s Sampler) Sample(x, phase float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(phase) || math.IsInf(phase, 0) {
		return 0
	}
	switch s.Wave {
	case WaveSine:
		return s.Amplitude * math.Sin(2*math.Pi*(x*s.Frequency+phase))
	case WaveSquare:
		if s.Ramp(x, phase) < 0.5 {
			return s.Amplitude
		}
		return -s.Amplitude
	case WaveTriangle:
		u := s.Ramp(x, phase)
		return s.Amplitude * (1 - 4*math.Abs(u-0.5))
	default:
		return 0
	}
}
