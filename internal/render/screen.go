package render

import (
	"fmt"

	"github.com/spacehole-rogue/supertrek/internal/game"
	"github.com/spacehole-rogue/supertrek/internal/world"
)

const (
	// Cols and Rows are the screen size in cells.
	Cols = 80
	Rows = 45

	title = "SUPER STAR TREK"

	sectorX, sectorY = 2, 2
	statusX, statusY = 34, 2
	chartX, chartY   = 2, 15
	deviceX, deviceY = 40, 15
	commsRow         = 27
	commsMax         = 14
	promptRow        = Rows - 3
	helpRow          = Rows - 1
	commsWidth       = Cols - 4
)

// View is the read-only game state a screen is drawn from. *game.Session
// satisfies it.
type View interface {
	Sector() game.SectorView
	Galaxy() game.GalaxyView
	Ship() game.Ship
	Condition() game.Condition
	HostilesRemaining() int
	BasesRemaining() int
	TimeRemaining() float64
	Outcome() game.Outcome
}

// DrawScreen lays out the full bridge display into buf: sector scan, status,
// galaxy chart, device panel, comms log and the command prompt.
func DrawScreen(buf *CellBuffer, v View, msgs []game.Message, prompt string) {
	buf.Clear()
	ship := v.Ship()

	buf.WriteString(2, 0, title, ColorWhite, ColorBlack)
	switch v.Outcome() {
	case game.Won:
		buf.WriteString(20, 0, "[ MISSION SUCCESS ]", ColorLightGreen, ColorBlack)
	case game.Lost:
		buf.WriteString(20, 0, "[ GAME OVER ]", ColorLightRed, ColorBlack)
	default:
		buf.WriteString(20, 0, fmt.Sprintf("[ Quadrant %d,%d ]", ship.Quadrant.X, ship.Quadrant.Y), ColorLightCyan, ColorBlack)
	}
	stardate := fmt.Sprintf("Stardate %.1f", ship.Stardate)
	buf.WriteString(Cols-2-len(stardate), 0, stardate, ColorDarkGray, ColorBlack)

	buf.DrawBox(sectorX, sectorY, 30, 12, "Short Range Scan", ColorLightGray)
	RenderSector(buf, v.Sector(), sectorX+2, sectorY+1)

	drawStatus(buf, v, ship)

	buf.DrawBox(chartX, chartY, 36, 11, "Galaxy", ColorLightGray)
	RenderGalaxy(buf, v.Galaxy(), chartX+1, chartY+1)

	buf.DrawBox(deviceX, deviceY, 38, 11, "Devices", ColorLightGray)
	for i, d := range world.Devices() {
		drawDeviceStatus(buf, deviceX+2, deviceY+1+i, d, ship.Damage[d])
	}

	drawComms(buf, msgs)

	buf.WriteString(2, promptRow, ">"+prompt+"_", ColorWhite, ColorBlack)
	buf.WriteString(2, helpRow, "ENTER: Execute  BACKSPACE: Erase  ESC: Quit  HELP: Commands", ColorDarkGray, ColorBlack)
}

func drawStatus(buf *CellBuffer, v View, ship game.Ship) {
	buf.DrawBox(statusX, statusY, 44, 12, "Status", ColorLightGray)
	x, y := statusX+2, statusY+1

	cond := v.Condition()
	buf.WriteString(x, y, "Condition:", ColorLightGray, ColorBlack)
	buf.WriteString(x+11, y, string(cond), ConditionColor(cond), ColorBlack)
	buf.WriteString(x, y+1, fmt.Sprintf("Sector:    %d,%d", ship.Sector.X, ship.Sector.Y), ColorLightGray, ColorBlack)
	buf.WriteString(x, y+2, fmt.Sprintf("Torpedoes: %d", ship.Torpedoes), ColorLightGray, ColorBlack)
	buf.WriteString(x, y+3, fmt.Sprintf("Klingons:  %d", v.HostilesRemaining()), ColorLightGray, ColorBlack)
	buf.WriteString(x, y+4, fmt.Sprintf("Bases:     %d", v.BasesRemaining()), ColorLightGray, ColorBlack)

	timeClr := uint8(ColorLightGray)
	if v.TimeRemaining() < 5 {
		timeClr = ColorYellow
	}
	buf.WriteString(x, y+5, fmt.Sprintf("Time Left: %.1f", v.TimeRemaining()), timeClr, ColorBlack)

	drawEnergyBar(buf, x, y+7, "Energy ", ship.Energy, ship.InitialEnergy, ColorYellow)
	drawEnergyBar(buf, x, y+8, "Shields", ship.Shields, ship.InitialEnergy, ColorLightBlue)
}

// drawComms fills the comms panel with the newest messages, wrapped to the
// panel width.
func drawComms(buf *CellBuffer, msgs []game.Message) {
	buf.WriteString(2, commsRow, "--- Comms ---", ColorLightCyan, ColorBlack)

	type line struct {
		text string
		clr  uint8
	}
	var lines []line
	for _, msg := range msgs {
		clr := MessageColor(msg.Priority)
		for _, l := range wrapText(msg.Text, commsWidth) {
			lines = append(lines, line{l, clr})
		}
	}
	if len(lines) > commsMax {
		lines = lines[len(lines)-commsMax:]
	}
	for i, l := range lines {
		buf.WriteString(2, commsRow+1+i, l.text, l.clr, ColorBlack)
	}
}
