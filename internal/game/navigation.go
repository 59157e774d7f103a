package game

import (
	"fmt"
	"math"

	"github.com/spacehole-rogue/supertrek/internal/world"
)

const (
	stepsPerWarp   = 8
	warpOverhead   = 10
	maxWarp        = 8.0
	tenthStardate  = 0.1
	fullWarpFactor = 1.0
)

// elapsed is the stardate cost of moving at the given warp factor.
func elapsed(warp float64) float64 {
	if warp >= fullWarpFactor {
		return 1.0
	}
	return math.Floor(warp*10) * tenthStardate
}

func (s *Session) navigate(ev *events, course, warp float64) error {
	sh := &s.ship
	if !sh.Damage.Operational(world.WarpEngines) && warp > s.Rules.DamagedWarpCeiling {
		return rejectf(RejectDeviceDamaged, "WARP ENGINES DAMAGED - MAX %.1f", s.Rules.DamagedWarpCeiling)
	}
	if !validCourse(course) {
		return rejectf(RejectInvalidParameter, "INVALID COURSE (1-8)")
	}
	if warp <= 0 || warp > maxWarp || math.IsNaN(warp) {
		return rejectf(RejectInvalidParameter, "INVALID WARP (0.1-8)")
	}
	n := int(warp * stepsPerWarp)
	required := n + warpOverhead
	if sh.Energy < required {
		return rejectf(RejectInsufficient, "INSUFFICIENT ENERGY (%d NEEDED)", required)
	}

	dx, dy := courseDirection(course)
	grid := &s.quadrant.Grid
	start := sh.Sector
	grid.Clear(start)

	pos := start
	fx, fy := float64(start.X), float64(start.Y)
	taken := 0
	blocked := false
	for range n {
		fx += dx
		fy += dy
		next := quantize(fx, fy)
		if !next.InBounds() {
			// The ship stops at the edge; no quadrant transition happens.
			if clamped := next.Clamp(); grid.IsEmpty(clamped) {
				pos = clamped
			}
			break
		}
		if !grid.IsEmpty(next) {
			blocked = true
			break
		}
		pos = next
		taken++
	}

	sh.Sector = pos
	grid.Set(pos, world.Cell{Kind: world.CellShip})

	if blocked {
		sh.Energy -= taken
		sh.Stardate += elapsed(float64(taken) / stepsPerWarp)
		ev.add("BLOCKED BY OBSTACLE", MsgWarning)
	} else {
		sh.Energy -= required
		sh.Stardate += elapsed(warp)
	}
	s.logger.Debug("navigated", "from", start, "to", pos, "steps", taken, "blocked", blocked)

	if s.checkDocking() {
		ev.add("DOCKED AT STARBASE", MsgDiscovery)
	}

	if sh.TimeRemaining() <= 0 {
		s.outcome = Lost
		ev.add(fmt.Sprintf("TIME UP - %d KLINGONS LEFT", s.hostilesLeft), MsgCritical)
		return nil
	}
	if !blocked {
		ev.add(fmt.Sprintf("MOVED TO %d,%d", pos.X, pos.Y), MsgInfo)
	}
	return nil
}
