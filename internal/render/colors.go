package render

import (
	"image/color"

	"github.com/spacehole-rogue/supertrek/internal/game"
	"github.com/spacehole-rogue/supertrek/internal/world"
)

// CGA 16-color palette indices.
const (
	ColorBlack        = 0
	ColorBlue         = 1
	ColorGreen        = 2
	ColorCyan         = 3
	ColorRed          = 4
	ColorMagenta      = 5
	ColorBrown        = 6
	ColorLightGray    = 7
	ColorDarkGray     = 8
	ColorLightBlue    = 9
	ColorLightGreen   = 10
	ColorLightCyan    = 11
	ColorLightRed     = 12
	ColorLightMagenta = 13
	ColorYellow       = 14
	ColorWhite        = 15
)

// Palette contains the classic CGA 16-color palette.
var Palette = [16]color.RGBA{
	{0, 0, 0, 255},
	{0, 0, 170, 255},
	{0, 170, 0, 255},
	{0, 170, 170, 255},
	{170, 0, 0, 255},
	{170, 0, 170, 255},
	{170, 85, 0, 255},
	{170, 170, 170, 255},
	{85, 85, 85, 255},
	{85, 85, 255, 255},
	{85, 255, 85, 255},
	{85, 255, 255, 255},
	{255, 85, 85, 255},
	{255, 85, 255, 255},
	{255, 255, 85, 255},
	{255, 255, 255, 255},
}

// MessageColor picks the comms log color for a message priority.
func MessageColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgCritical:
		return ColorLightRed
	case game.MsgWarning:
		return ColorYellow
	case game.MsgDiscovery:
		return ColorLightGreen
	case game.MsgCombat:
		return ColorWhite
	default:
		return ColorCyan
	}
}

// ConditionColor is the alert color shown next to the ship's condition.
func ConditionColor(c game.Condition) uint8 {
	switch c {
	case game.ConditionRed:
		return ColorLightRed
	case game.ConditionYellow:
		return ColorYellow
	case game.ConditionDocked:
		return ColorLightBlue
	default:
		return ColorLightGreen
	}
}

// cellVisual is how one sector is drawn: three glyphs and a color.
type cellVisual struct {
	glyphs string
	fg     uint8
}

var cellVisuals = map[world.CellKind]cellVisual{
	world.CellEmpty:   {" · ", ColorDarkGray},
	world.CellShip:    {"<*>", ColorLightCyan},
	world.CellHostile: {"+K+", ColorLightRed},
	world.CellBase:    {">!<", ColorLightMagenta},
	world.CellStar:    {" * ", ColorYellow},
}

func visualFor(k world.CellKind) cellVisual {
	if v, ok := cellVisuals[k]; ok {
		return v
	}
	return cellVisual{" ? ", ColorWhite}
}
