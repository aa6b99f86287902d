// Package compose turns visualizer grids into terminal text.
package compose

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/olivier-w/wavebar/internal/visualizer"
)

// DefaultFallback replaces glyphs that would not occupy exactly one column.
const DefaultFallback = '*'

// Renderer writes grids as ANSI-colored rows for one color profile.
type Renderer struct {
	Profile  termenv.Profile
	Width    *runewidth.Condition
	Fallback rune
}

// NewRenderer returns a renderer for profile using the user's locale
// width rules.
func NewRenderer(profile termenv.Profile) *Renderer {
	return &Renderer{
		Profile:  profile,
		Width:    runewidth.DefaultCondition,
		Fallback: DefaultFallback,
	}
}

// Glyph returns r if it is exactly one column wide, else the fallback.
// Zero-width runes become spaces.
func (r *Renderer) Glyph(g rune) rune {
	switch r.Width.RuneWidth(g) {
	case 1:
		return g
	case 0:
		return ' '
	default:
		return r.Fallback
	}
}

// Lines renders each grid row. A color sequence is emitted only when the
// foreground changes, and every row that set a color ends with a reset.
func (r *Renderer) Lines(g *visualizer.Grid) []string {
	lines := make([]string, g.Height)
	var sb strings.Builder
	for y := range g.Height {
		sb.Reset()
		active := ""
		for _, c := range g.Row(y) {
			if c.Blank() {
				if active != "" {
					sb.WriteString(reset)
					active = ""
				}
				sb.WriteByte(' ')
				continue
			}
			if seq := r.Profile.Color(c.Fg.Hex()).Sequence(false); seq != active {
				if seq == "" {
					sb.WriteString(reset)
				} else {
					sb.WriteString(termenv.CSI + seq + "m")
				}
				active = seq
			}
			sb.WriteRune(r.Glyph(c.Glyph))
		}
		if active != "" {
			sb.WriteString(reset)
		}
		lines[y] = sb.String()
	}
	return lines
}

// Render joins Lines with newlines.
func (r *Renderer) Render(g *visualizer.Grid) string {
	return strings.Join(r.Lines(g), "\n")
}

var reset = termenv.CSI + termenv.ResetSeq + "m"
