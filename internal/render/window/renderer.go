package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spacehole-rogue/supertrek/internal/render"
)

// GridRenderer draws a CellBuffer to an Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image // 1x1 white pixel for drawing backgrounds
}

// NewGridRenderer creates a renderer with the given atlas and cell dimensions.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

// ScreenSize is the pixel size of a buffer drawn by r.
func (r *GridRenderer) ScreenSize(buf *render.CellBuffer) (int, int) {
	return buf.Cols * r.CellW, buf.Rows * r.CellH
}

// Draw renders the entire CellBuffer to the screen.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *render.CellBuffer) {
	scaleX := float64(r.CellW) / float64(GlyphWidth)
	scaleY := float64(r.CellH) / float64(GlyphHeight)

	var op ebiten.DrawImageOptions

	for y := range buf.Rows {
		for x := range buf.Cols {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			if cell.BG != render.ColorBlack {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(render.Palette[cell.BG])
				screen.DrawImage(r.bgPixel, &op)
			}

			if cell.Glyph != ' ' && cell.Glyph != 0 {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(scaleX, scaleY)
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(render.Palette[cell.FG])
				screen.DrawImage(r.Atlas.Glyph(cell.Glyph), &op)
			}
		}
	}
}
