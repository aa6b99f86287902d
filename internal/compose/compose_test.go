package compose

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/olivier-w/wavebar/internal/visualizer"
)

func testRenderer(p termenv.Profile) *Renderer {
	r := NewRenderer(p)
	r.Width = runewidth.NewCondition()
	r.Width.EastAsianWidth = false
	return r
}

func TestLinesAsciiHasNoEscapes(t *testing.T) {
	g := visualizer.NewGrid(3, 2)
	g.Set(0, 0, visualizer.Cell{Glyph: '⣿', Fg: visualizer.RGB{R: 0, G: 255, B: 255}})
	g.Set(2, 1, visualizer.Cell{Glyph: '━', Fg: visualizer.RGB{R: 255}})

	lines := testRenderer(termenv.Ascii).Lines(g)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "⣿  " {
		t.Fatalf("expected %q, got %q", "⣿  ", lines[0])
	}
	if lines[1] != "  ━" {
		t.Fatalf("expected %q, got %q", "  ━", lines[1])
	}
}

func TestLinesEmitsColorOnlyOnChange(t *testing.T) {
	cyan := visualizer.RGB{R: 0, G: 255, B: 255}
	g := visualizer.NewGrid(4, 1)
	for x := range 3 {
		g.Set(x, 0, visualizer.Cell{Glyph: '⣿', Fg: cyan})
	}
	g.Set(3, 0, visualizer.Cell{Glyph: '⣿', Fg: visualizer.RGB{B: 255}})

	line := testRenderer(termenv.TrueColor).Lines(g)[0]
	if n := strings.Count(line, "38;2;0;255;255m"); n != 1 {
		t.Fatalf("expected one cyan sequence, got %d in %q", n, line)
	}
	if n := strings.Count(line, "38;2;0;0;255m"); n != 1 {
		t.Fatalf("expected one blue sequence, got %d in %q", n, line)
	}
	if !strings.HasSuffix(line, reset) {
		t.Fatalf("expected row to end with reset, got %q", line)
	}
}

func TestLinesResetsBeforeBlankCells(t *testing.T) {
	g := visualizer.NewGrid(3, 1)
	g.Set(0, 0, visualizer.Cell{Glyph: '━', Fg: visualizer.RGB{R: 255}})
	g.Set(2, 0, visualizer.Cell{Glyph: '━', Fg: visualizer.RGB{R: 255}})

	line := testRenderer(termenv.TrueColor).Lines(g)[0]
	if n := strings.Count(line, "38;2;255;0;0m"); n != 2 {
		t.Fatalf("expected color to be re-emitted after the gap, got %d in %q", n, line)
	}
}

func TestGlyphReplacesWideRunes(t *testing.T) {
	r := testRenderer(termenv.Ascii)
	if got := r.Glyph('⣀'); got != '⣀' {
		t.Fatalf("expected braille to pass through, got %q", got)
	}
	if got := r.Glyph('音'); got != DefaultFallback {
		t.Fatalf("expected fallback for wide rune, got %q", got)
	}
	if got := r.Glyph('\u200b'); got != ' ' {
		t.Fatalf("expected space for zero-width rune, got %q", got)
	}
}

func TestRenderRowCountMatchesGrid(t *testing.T) {
	g := visualizer.NewGrid(5, 3)
	out := testRenderer(termenv.Ascii).Render(g)
	if n := strings.Count(out, "\n") + 1; n != 3 {
		t.Fatalf("expected 3 rows, got %d", n)
	}
}
