package render

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph byte  // CP437 code (0-255)
	FG    uint8 // Foreground color index (0-15)
	BG    uint8 // Background color index (0-15)
}

// Rune returns the Unicode character the cell displays.
func (c Cell) Rune() rune {
	return CP437ToUnicode[c.Glyph]
}

// CellBuffer is a 2D grid of character cells. Backends draw it to a window
// or a terminal.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

var blank = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank (space on black).
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// WriteString writes s starting at (x, y), one cell per rune. Runes outside
// code page 437 are drawn as '?'.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	offset := 0
	for _, ch := range s {
		b.Set(x+offset, y, UnicodeToCP437(ch), fg, bg)
		offset++
	}
}

// Text reads row y back as a string with trailing blanks trimmed.
func (b *CellBuffer) Text(y int) string {
	if y < 0 || y >= b.Rows {
		return ""
	}
	row := make([]rune, b.Cols)
	end := 0
	for x := range b.Cols {
		row[x] = b.Cells[y*b.Cols+x].Rune()
		if row[x] != ' ' && row[x] != 0 {
			end = x + 1
		}
	}
	return string(row[:end])
}

// DrawBox draws a single-line frame with its top-left corner at (x, y).
// A non-empty title is set into the top edge.
func (b *CellBuffer) DrawBox(x, y, w, h int, title string, fg uint8) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for i := x + 1; i < right; i++ {
		b.Set(i, y, 196, fg, ColorBlack)      // ─
		b.Set(i, bottom, 196, fg, ColorBlack) // ─
	}
	for j := y + 1; j < bottom; j++ {
		b.Set(x, j, 179, fg, ColorBlack)     // │
		b.Set(right, j, 179, fg, ColorBlack) // │
	}
	b.Set(x, y, 218, fg, ColorBlack)          // ┌
	b.Set(right, y, 191, fg, ColorBlack)      // ┐
	b.Set(x, bottom, 192, fg, ColorBlack)     // └
	b.Set(right, bottom, 217, fg, ColorBlack) // ┘
	if title != "" {
		b.WriteString(x+2, y, " "+title+" ", ColorLightCyan, ColorBlack)
	}
}
