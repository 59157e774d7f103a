package render

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spacehole-rogue/supertrek/internal/world"
)

const barWidth = 20

// drawEnergyBar shows a single-value bar with the value and maximum after it.
// The label turns yellow at 30% and red at 15%.
func drawEnergyBar(buf *CellBuffer, x, y int, label string, val, max int, clr uint8) {
	if max <= 0 {
		max = 1
	}
	filled := barWidth * val / max
	if filled > barWidth {
		filled = barWidth
	}

	labelClr := uint8(ColorLightGray)
	pct := val * 100 / max
	if pct <= 15 {
		labelClr = ColorLightRed
	} else if pct <= 30 {
		labelClr = ColorYellow
	}
	buf.WriteString(x, y, label, labelClr, ColorBlack)

	for i := range barWidth {
		if i < filled {
			buf.Set(x+8+i, y, 219, clr, ColorBlack) // █
		} else {
			buf.Set(x+8+i, y, 176, ColorDarkGray, ColorBlack) // ░
		}
	}
	info := fmt.Sprintf("%s/%s", humanize.Comma(int64(val)), humanize.Comma(int64(max)))
	buf.WriteString(x+29, y, info, labelClr, ColorBlack)
}

// drawDeviceStatus renders one line of the device panel: the name, then OK
// or the repair still needed.
func drawDeviceStatus(buf *CellBuffer, x, y int, d world.Device, level float64) {
	if level >= 0 {
		buf.WriteString(x, y, d.Name(), ColorLightGray, ColorBlack)
		buf.WriteString(x+22, y, "OK", ColorLightGreen, ColorBlack)
		return
	}
	buf.WriteString(x, y, d.Name(), ColorDarkGray, ColorBlack)
	buf.WriteString(x+22, y, fmt.Sprintf("DMG %.1f", level), ColorLightRed, ColorBlack)
}
