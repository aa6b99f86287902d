package visualizer

const brailleBase = 0x2800

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Dot is one sub-pixel position inside a braille cell.
type Dot struct {
	X int // 0..1
	Y int // 0..3
}

// BrailleCanvas is a sub-pixel bitmap with 2x4 dots per character cell.
// Each cell carries its own foreground color; the last color written to a
// cell wins.
type BrailleCanvas struct {
	cols   int
	rows   int
	masks  []uint8
	colors []RGB
}

// NewBrailleCanvas creates a canvas of cols x rows character cells.
func NewBrailleCanvas(cols, rows int) *BrailleCanvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &BrailleCanvas{
		cols:   cols,
		rows:   rows,
		masks:  make([]uint8, cols*rows),
		colors: make([]RGB, cols*rows),
	}
}

func (bc *BrailleCanvas) Cols() int        { return bc.cols }
func (bc *BrailleCanvas) Rows() int        { return bc.rows }
func (bc *BrailleCanvas) PixelWidth() int  { return bc.cols * 2 }
func (bc *BrailleCanvas) PixelHeight() int { return bc.rows * 4 }

func (bc *BrailleCanvas) index(cellX, cellY int) (int, bool) {
	if cellX < 0 || cellX >= bc.cols || cellY < 0 || cellY >= bc.rows {
		return 0, false
	}
	return cellY*bc.cols + cellX, true
}

// Set turns on one sub-pixel. Coordinates outside the canvas or the 2x4
// cell are ignored.
func (bc *BrailleCanvas) Set(cellX, cellY, subX, subY int) {
	if subX < 0 || subX > 1 || subY < 0 || subY > 3 {
		return
	}
	i, ok := bc.index(cellX, cellY)
	if !ok {
		return
	}
	bc.masks[i] |= 1 << brailleBits[subX][subY]
}

// SetDot turns on the sub-pixel at dot-space coordinates (x, y) and tints
// its cell with c.
func (bc *BrailleCanvas) SetDot(x, y int, c RGB) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if _, ok := bc.index(cx, cy); !ok {
		return
	}
	bc.Set(cx, cy, x%2, y%4)
	bc.SetColor(cx, cy, c)
}

// SetColor sets the foreground color of a cell.
func (bc *BrailleCanvas) SetColor(cellX, cellY int, c RGB) {
	if i, ok := bc.index(cellX, cellY); ok {
		bc.colors[i] = c
	}
}

// Mask returns the raw dot mask of a cell.
func (bc *BrailleCanvas) Mask(cellX, cellY int) uint8 {
	if i, ok := bc.index(cellX, cellY); ok {
		return bc.masks[i]
	}
	return 0
}

// ClearCell turns off every dot of one cell.
func (bc *BrailleCanvas) ClearCell(cellX, cellY int) {
	if i, ok := bc.index(cellX, cellY); ok {
		bc.masks[i] = 0
		bc.colors[i] = RGB{}
	}
}

// Reset clears the whole canvas.
func (bc *BrailleCanvas) Reset() {
	clear(bc.masks)
	clear(bc.colors)
}

// Emit returns the braille codepoint for a cell and whether any dot is on.
func (bc *BrailleCanvas) Emit(cellX, cellY int) (rune, bool) {
	m := bc.Mask(cellX, cellY)
	return rune(brailleBase + int(m)), m != 0
}

// DrawLine draws a Bresenham line between two dot-space points. Segments
// outside the canvas are clipped dot by dot.
func (bc *BrailleCanvas) DrawLine(x0, y0, x1, y1 int, c RGB) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		bc.SetDot(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Grid converts the canvas into cells. Empty cells become spaces.
func (bc *BrailleCanvas) Grid() *Grid {
	g := NewGrid(bc.cols, bc.rows)
	bc.drawInto(g, 0, 0)
	return g
}

// drawInto writes the lit cells of the canvas into g at offset (x, y),
// leaving unlit cells untouched.
func (bc *BrailleCanvas) drawInto(g *Grid, x, y int) {
	for cy := range bc.rows {
		for cx := range bc.cols {
			r, lit := bc.Emit(cx, cy)
			if !lit {
				continue
			}
			g.Set(x+cx, y+cy, Cell{Glyph: r, Fg: bc.colors[cy*bc.cols+cx]})
		}
	}
}

// DecodeBraille returns the dot mask encoded by a braille codepoint.
func DecodeBraille(r rune) (uint8, bool) {
	if r < brailleBase || r > brailleBase+0xFF {
		return 0, false
	}
	return uint8(r - brailleBase), true
}

// Dots lists the sub-pixels that are on in mask, column by column.
func Dots(mask uint8) []Dot {
	var dots []Dot
	for x := range 2 {
		for y := range 4 {
			if mask&(1<<brailleBits[x][y]) != 0 {
				dots = append(dots, Dot{X: x, Y: y})
			}
		}
	}
	return dots
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
