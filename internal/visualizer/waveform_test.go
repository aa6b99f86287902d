package visualizer

import (
	"math"
	"testing"
)

func TestSineWrapsSeamlessly(t *testing.T) {
	for _, cols := range []int{5, 20, 37, 80, 200} {
		s := SamplerFor(WaveSine, cols, 3)
		for _, phase := range []float64{0, 0.13, 0.5, 0.77} {
			a, b := s.Sample(0, phase), s.Sample(1, phase)
			if math.Abs(a-b) > 1e-9 {
				t.Fatalf("cols=%d phase=%v: expected wrap, got %v vs %v", cols, phase, a, b)
			}
		}
	}
}

func TestSamplerForGeometry(t *testing.T) {
	s := SamplerFor(WaveSine, 80, 3)
	if s.Frequency != 4 {
		t.Fatalf("expected 4 periods, got %v", s.Frequency)
	}
	if math.Abs(s.Amplitude-4.4) > 1e-9 {
		t.Fatalf("expected amplitude 4.4, got %v", s.Amplitude)
	}
	if n := SamplerFor(WaveSine, 3, 1); n.Frequency != 1 {
		t.Fatalf("expected narrow bars to keep one period, got %v", n.Frequency)
	}
}

func TestSampleStaysInsideAmplitude(t *testing.T) {
	for _, w := range []Wave{WaveFlat, WaveSine, WaveSquare, WaveTriangle} {
		s := SamplerFor(w, 40, 2)
		for i := range 200 {
			x := float64(i) / 200
			v := s.Sample(x, 0.3)
			if math.Abs(v) > s.Amplitude+1e-9 {
				t.Fatalf("%s: |%v| exceeds amplitude %v", w, v, s.Amplitude)
			}
		}
	}
}

func TestSampleShapes(t *testing.T) {
	if v := Sample(WaveSine, 0.25, 0); math.Abs(v-1) > 1e-9 {
		t.Fatalf("expected sine peak 1, got %v", v)
	}
	if v := Sample(WaveSquare, 0.1, 0); v != 1 {
		t.Fatalf("expected square high, got %v", v)
	}
	if v := Sample(WaveSquare, 0.6, 0); v != -1 {
		t.Fatalf("expected square low, got %v", v)
	}
	if v := Sample(WaveTriangle, 0.5, 0); v != 1 {
		t.Fatalf("expected triangle peak at mid period, got %v", v)
	}
	if v := Sample(WaveTriangle, 0, 0); v != -1 {
		t.Fatalf("expected triangle trough at period start, got %v", v)
	}
	if v := Sample(WaveFlat, 0.3, 0.2); v != 0 {
		t.Fatalf("expected flat 0, got %v", v)
	}
}

func TestSampleNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Sample(WaveSine, v, 0); got != 0 {
			t.Fatalf("expected 0 for x=%v, got %v", v, got)
		}
		if got := Sample(WaveSquare, 0.1, v); got != 0 {
			t.Fatalf("expected 0 for phase=%v, got %v", v, got)
		}
	}
}
