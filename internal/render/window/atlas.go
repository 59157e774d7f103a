// Package window draws a render.CellBuffer into an Ebitengine window.
package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spacehole-rogue/supertrek/internal/render"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	atlasCols   = 16
	atlasRows   = 16
)

// FontAtlas holds the CP437 glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas generates a CP437 font atlas at startup.
// ASCII characters are rendered with basicfont.Face7x13; box-drawing, block
// and dot glyphs are drawn by hand.
func NewFontAtlas() *FontAtlas {
	img := buildAtlas()
	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := range 256 {
		a.glyphs[code] = eimg.SubImage(glyphRect(code)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a CP437 character code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

func glyphRect(code int) image.Rectangle {
	x := (code % atlasCols) * GlyphWidth
	y := (code / atlasCols) * GlyphHeight
	return image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
}

// buildAtlas rasterizes every glyph the screen layout uses into one image.
func buildAtlas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*GlyphWidth, atlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := range 256 {
		origin := glyphRect(code).Min
		r := render.CP437ToUnicode[code]

		if r >= 32 && r <= 126 {
			drawFontGlyph(img, face, origin.X, origin.Y, r)
			continue
		}
		if bc, ok := boxChars[byte(code)]; ok {
			drawBoxGlyph(img, origin.X, origin.Y, bc[0], bc[1], bc[2], bc[3])
			continue
		}
		drawBlockGlyph(img, origin.X, origin.Y, byte(code))
	}
	return img
}

// drawFontGlyph renders a single ASCII character into the atlas.
// basicfont.Face7x13 glyphs are 7x13, centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// boxChars maps CP437 codes to single-line box connection flags: {left, right, top, bottom}.
var boxChars = map[byte][4]bool{
	179: {false, false, true, true}, // │
	191: {true, false, false, true}, // ┐
	192: {false, true, true, false}, // └
	196: {true, true, false, false}, // ─
	217: {true, false, true, false}, // ┘
	218: {false, true, false, true}, // ┌
}

// drawBoxGlyph draws a single-line box-drawing character.
// Lines are 2 pixels wide, centered in the 16x16 cell.
func drawBoxGlyph(img *image.NRGBA, cellX, cellY int, left, right, top, bottom bool) {
	cx := cellX + 7
	cy := cellY + 7

	if left {
		fill(img, cellX, cy, cx+2, cy+2)
	}
	if right {
		fill(img, cx, cy, cellX+GlyphWidth, cy+2)
	}
	if top {
		fill(img, cx, cellY, cx+2, cy+2)
	}
	if bottom {
		fill(img, cx, cy, cx+2, cellY+GlyphHeight)
	}
}

// drawBlockGlyph draws the bar shading and sector marker glyphs.
func drawBlockGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	w := color.NRGBA{255, 255, 255, 255}

	switch code {
	case 176: // ░
		for y := range GlyphHeight {
			for x := range GlyphWidth {
				if (x+y)%4 == 0 {
					img.SetNRGBA(cellX+x, cellY+y, w)
				}
			}
		}
	case 219: // █
		fill(img, cellX, cellY, cellX+GlyphWidth, cellY+GlyphHeight)
	case 250: // ·
		fill(img, cellX+7, cellY+7, cellX+9, cellY+9)
	case 254: // ■
		fill(img, cellX+4, cellY+4, cellX+12, cellY+12)
	}
}

func fill(img *image.NRGBA, x0, y0, x1, y1 int) {
	w := color.NRGBA{255, 255, 255, 255}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, w)
		}
	}
}
