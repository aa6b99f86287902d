package visualizer

import (
	"math"
	"testing"
)

func allGradients() []Gradient {
	gs := []Gradient{CirclesGradient, SquaresGradient, TrianglesGradient, NeutralGradient}
	for s := range schemeCount {
		gs = append(gs, s.Gradient())
	}
	for _, base := range []RGB{{}, {255, 255, 255}, {255, 136, 0}, {12, 200, 90}} {
		gs = append(gs, AlbumScheme(base), AlbumPalette(base))
	}
	return gs
}

func TestGradientClosure(t *testing.T) {
	for _, g := range allGradients() {
		first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
		for _, p := range []float64{0, -1, math.NaN(), math.Inf(-1)} {
			if got := g.At(p); got != first {
				t.Fatalf("%s: At(%v) expected %v, got %v", g.Name, p, first, got)
			}
		}
		for _, p := range []float64{1, 2, math.Inf(1)} {
			if got := g.At(p); got != last {
				t.Fatalf("%s: At(%v) expected %v, got %v", g.Name, p, last, got)
			}
		}
	}
}

func TestGradientInterpolates(t *testing.T) {
	got := CirclesGradient.At(0.5)
	want := RGB{R: 0, G: 128, B: 255}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGradientDegenerate(t *testing.T) {
	if got := (Gradient{}).At(0.5); got != (RGB{}) {
		t.Fatalf("expected zero color, got %v", got)
	}
	one := Gradient{Stops: []RGB{{1, 2, 3}}}
	if got := one.At(0.7); got != (RGB{1, 2, 3}) {
		t.Fatalf("expected the only stop, got %v", got)
	}
}

func TestAlbumSchemeKeepsBase(t *testing.T) {
	base := RGB{R: 200, G: 80, B: 40}
	g := AlbumScheme(base)
	if len(g.Stops) != 4 {
		t.Fatalf("expected 4 stops, got %d", len(g.Stops))
	}
	if g.Stops[1] != base {
		t.Fatalf("expected base as second stop, got %v", g.Stops[1])
	}
	if lum(g.Stops[0]) < lum(base) || lum(g.Stops[3]) > lum(g.Stops[2]) {
		t.Fatalf("expected tint then shades, got %v", g.Stops)
	}
}

func lum(c RGB) int { return int(c.R) + int(c.G) + int(c.B) }

func TestAlbumPaletteStops(t *testing.T) {
	g := AlbumPalette(RGB{R: 250, G: 10, B: 100})
	if len(g.Stops) != 6 {
		t.Fatalf("expected 6 stops, got %d", len(g.Stops))
	}
	if g.Stops[1] != (RGB{R: 5, G: 245, B: 155}) {
		t.Fatalf("expected complement, got %v", g.Stops[1])
	}
	if g.Stops[4] != (RGB{R: 255, G: 70, B: 160}) {
		t.Fatalf("expected saturating lighter stop, got %v", g.Stops[4])
	}
	if g.Stops[5] != (RGB{R: 190, G: 0, B: 40}) {
		t.Fatalf("expected saturating darker stop, got %v", g.Stops[5])
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff8800")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != (RGB{R: 255, G: 136, B: 0}) {
		t.Fatalf("expected #ff8800, got %v", c)
	}
	if c.Hex() != "#ff8800" {
		t.Fatalf("expected hex round trip, got %s", c.Hex())
	}
	if _, err := ParseHex("orange"); err == nil {
		t.Fatal("expected error for non-hex color")
	}
}

func TestEffectEnginePhase(t *testing.T) {
	e := DefaultEffectEngine
	cases := []struct {
		elapsed, progress, want float64
	}{
		{0, 0, 0},
		{1000, 0, 0.5},
		{2000, 0, 0},
		{0, 0.5, 0.25},
		{1000, 1, 0},
		{math.NaN(), 0, 0},
	}
	for _, tc := range cases {
		if got := e.Phase(tc.elapsed, tc.progress); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("Phase(%v, %v): expected %v, got %v", tc.elapsed, tc.progress, tc.want, got)
		}
	}
}

func TestPingPong(t *testing.T) {
	cases := map[float64]float64{0: 0, 0.25: 0.5, 0.5: 1, 0.75: 0.5, 1: 0, 1.5: 1}
	for in, want := range cases {
		if got := pingPong(in); math.Abs(got-want) > 1e-9 {
			t.Fatalf("pingPong(%v): expected %v, got %v", in, want, got)
		}
	}
}

func TestScaleClamps(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 50}
	if got := c.Scale(2); got != c {
		t.Fatalf("expected scale >1 to clamp, got %v", got)
	}
	if got := c.Scale(-1); got != (RGB{}) {
		t.Fatalf("expected scale <0 to clamp, got %v", got)
	}
}
