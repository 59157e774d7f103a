package game

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spacehole-rogue/supertrek/internal/world"
)

// Condition is the ship's alert level.
type Condition string

const (
	ConditionGreen  Condition = "GREEN"
	ConditionYellow Condition = "YELLOW"
	ConditionRed    Condition = "RED"
	ConditionDocked Condition = "DOCKED"
)

// lowEnergyFraction of the initial reserve triggers a yellow alert.
const lowEnergyFraction = 0.1

// Condition derives the alert level from docking, hostiles and energy.
func (s *Session) Condition() Condition {
	switch {
	case s.ship.Docked:
		return ConditionDocked
	case s.quadrant.LivingHostiles() > 0:
		return ConditionRed
	case float64(s.ship.Energy) < float64(s.ship.InitialEnergy)*lowEnergyFraction:
		return ConditionYellow
	default:
		return ConditionGreen
	}
}

// StatusReport lists the ship's vital statistics.
func (s *Session) StatusReport() []string {
	sh := &s.ship
	return []string{
		fmt.Sprintf("Stardate: %.1f", sh.Stardate),
		fmt.Sprintf("Condition: %s", s.Condition()),
		fmt.Sprintf("Quadrant: %d,%d", sh.Quadrant.X, sh.Quadrant.Y),
		fmt.Sprintf("Sector: %d,%d", sh.Sector.X, sh.Sector.Y),
		fmt.Sprintf("Energy: %s", humanize.Comma(int64(sh.Energy))),
		fmt.Sprintf("Shields: %s", humanize.Comma(int64(sh.Shields))),
		fmt.Sprintf("Torpedoes: %d", sh.Torpedoes),
		fmt.Sprintf("Klingons: %d", s.hostilesLeft),
		fmt.Sprintf("Time Left: %.1f", sh.TimeRemaining()),
	}
}

const deviceNameWidth = 12

// DamageReport lists every device and its repair state.
func (s *Session) DamageReport() []string {
	dv := &s.ship.Damage
	if !dv.Operational(world.DamageControl) {
		return []string{"DAMAGE CONTROL REPORT NOT AVAILABLE"}
	}
	out := []string{"DAMAGE REPORT:"}
	for _, d := range world.Devices() {
		name := d.Name()
		if len(name) > deviceNameWidth {
			name = name[:deviceNameWidth]
		}
		out = append(out, name+" "+dv.Status(d))
	}
	return out
}

// LongRangeScan shows the 3x3 block of quadrants around the ship as
// hostiles/bases/stars digits. Unvisited quadrants read "***" and cells
// beyond the galaxy edge read "///".
func (s *Session) LongRangeScan() []string {
	if !s.ship.Damage.Operational(world.LongRangeSensors) {
		return []string{"LONG RANGE SENSORS INOPERATIVE"}
	}
	out := []string{"LONG RANGE SCAN:"}
	center := s.ship.Quadrant
	for dy := -1; dy <= 1; dy++ {
		var b strings.Builder
		for dx := -1; dx <= 1; dx++ {
			c := world.Coord{X: center.X + dx, Y: center.Y + dy}
			if dx > -1 {
				b.WriteByte(' ')
			}
			b.WriteString(s.scanToken(c, c == center))
		}
		out = append(out, b.String())
	}
	return out
}

func (s *Session) scanToken(c world.Coord, current bool) string {
	if !c.InBounds() {
		return "///"
	}
	summary, known := s.galaxy.Known(c)
	if current {
		summary, known = s.galaxy.Summary(c), true
	}
	if !known {
		return "***"
	}
	return fmt.Sprintf("%d%d%d", summary.Hostiles, summary.Bases, summary.Stars)
}
