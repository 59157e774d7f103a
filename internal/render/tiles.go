package render

import (
	"fmt"

	"github.com/spacehole-rogue/supertrek/internal/game"
	"github.com/spacehole-rogue/supertrek/internal/world"
)

// sectorCellWidth is the number of columns one sector occupies.
const sectorCellWidth = 3

// RenderSector writes the short range scan with its top-left corner at
// (x, y): a header of column numbers, then one row per sector row.
func RenderSector(buf *CellBuffer, v game.SectorView, x, y int) {
	for col := 1; col <= world.Size; col++ {
		buf.WriteString(x+2+(col-1)*sectorCellWidth+1, y, fmt.Sprint(col), ColorDarkGray, ColorBlack)
	}
	for row := 1; row <= world.Size; row++ {
		py := y + row
		buf.WriteString(x, py, fmt.Sprint(row), ColorDarkGray, ColorBlack)
		for col := 1; col <= world.Size; col++ {
			vis := visualFor(v.At(world.Coord{X: col, Y: row}).Kind)
			buf.WriteString(x+2+(col-1)*sectorCellWidth, py, vis.glyphs, vis.fg, ColorBlack)
		}
	}
}

// RenderGalaxy writes the galaxy chart. Quadrants the ship has scanned show
// their hostiles, bases and stars; the rest read "***". The current quadrant
// is highlighted.
func RenderGalaxy(buf *CellBuffer, g game.GalaxyView, x, y int) {
	for col := 1; col <= world.Size; col++ {
		buf.WriteString(x+2+(col-1)*4+1, y, fmt.Sprint(col), ColorDarkGray, ColorBlack)
	}
	for row := 1; row <= world.Size; row++ {
		py := y + row
		buf.WriteString(x, py, fmt.Sprint(row), ColorDarkGray, ColorBlack)
		for col := 1; col <= world.Size; col++ {
			token, fg := "***", uint8(ColorDarkGray)
			if g.Revealed[row-1][col-1] {
				q := g.Known[row-1][col-1]
				token = fmt.Sprintf("%d%d%d", q.Hostiles, q.Bases, q.Stars)
				fg = ColorLightGray
				if q.Hostiles > 0 {
					fg = ColorLightRed
				}
			}
			bg := uint8(ColorBlack)
			if g.Current == (world.Coord{X: col, Y: row}) {
				fg, bg = ColorWhite, ColorBlue
			}
			buf.WriteString(x+2+(col-1)*4, py, token, fg, bg)
		}
	}
}
