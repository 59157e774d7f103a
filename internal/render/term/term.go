// Package term blits a render.CellBuffer onto a tcell terminal screen.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spacehole-rogue/supertrek/internal/render"
)

var palette = func() [16]tcell.Color {
	var p [16]tcell.Color
	for i, c := range render.Palette {
		p[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return p
}()

// Style converts a cell's palette colors to a tcell style.
func Style(c render.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(palette[c.FG&0x0f]).
		Background(palette[c.BG&0x0f])
}

// Blit copies buf onto s starting at the top-left corner. Cells beyond the
// terminal size are dropped. Call s.Show afterwards.
func Blit(s tcell.Screen, buf *render.CellBuffer) {
	w, h := s.Size()
	for y := 0; y < buf.Rows && y < h; y++ {
		for x := 0; x < buf.Cols && x < w; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			r := cell.Rune()
			if r == 0 {
				r = ' '
			}
			s.SetContent(x, y, r, nil, Style(cell))
		}
	}
}
