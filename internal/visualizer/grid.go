package visualizer

import "strings"

// Cell is one terminal character position.
type Cell struct {
	Glyph rune
	Fg    RGB
}

// Blank reports whether the cell draws nothing visible.
func (c Cell) Blank() bool {
	return c.Glyph == ' ' || c.Glyph == 0 || c.Glyph == brailleBase
}

var blankCell = Cell{Glyph: ' '}

// Grid is a row-major block of cells sized to a drawing area.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell
}

// NewGrid returns a blank grid. Dimensions below 1 are raised to 1 so the
// result is always drawable.
func NewGrid(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	g := &Grid{Width: width, Height: height, Cells: make([]Cell, width*height)}
	for i := range g.Cells {
		g.Cells[i] = blankCell
	}
	return g
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at (x, y), or a blank cell when out of range.
func (g *Grid) At(x, y int) Cell {
	if !g.inBounds(x, y) {
		return blankCell
	}
	return g.Cells[y*g.Width+x]
}

// Set writes a cell. Out-of-range writes are dropped.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.inBounds(x, y) {
		return
	}
	g.Cells[y*g.Width+x] = c
}

// Row returns the cells of row y, or nil when out of range.
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= g.Height {
		return nil
	}
	return g.Cells[y*g.Width : (y+1)*g.Width]
}

// Blit copies src into g with its top-left corner at (x, y), clipping
// anything that falls outside.
func (g *Grid) Blit(x, y int, src *Grid) {
	for sy := range src.Height {
		for sx := range src.Width {
			g.Set(x+sx, y+sy, src.At(sx, sy))
		}
	}
}

// String returns the glyphs only, rows joined by newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := range g.Height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range g.Row(y) {
			sb.WriteRune(c.Glyph)
		}
	}
	return sb.String()
}
