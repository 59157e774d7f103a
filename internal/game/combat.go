package game

import (
	"fmt"
	"math"

	"github.com/spacehole-rogue/supertrek/internal/world"
)

const (
	torpedoEnergyCost  = 2
	deviceDamageHit    = 20  // hits at or above this may damage a device
	deviceDamageOdds   = 0.6 // a device is damaged when U(0,1) exceeds this
	deviceDamageDivide = 200.0
)

// hitStrength is the distance-attenuated damage formula shared by every
// weapon in the game. ok is false when source and target share a sector.
func hitStrength(rng Rand, source float64, from, to world.Coord) (hit int, ok bool) {
	dist := from.Distance(to)
	if dist == 0 {
		return 0, false
	}
	return int(math.Floor(source / dist * (2 + rng.Float64()))), true
}

func (s *Session) firePhasers(ev *events, amount int) error {
	sh := &s.ship
	q := s.quadrant
	if !sh.Damage.Operational(world.PhaserControl) {
		return rejectf(RejectDeviceDamaged, "PHASER CONTROL INOPERATIVE")
	}
	living := q.LivingHostiles()
	if living == 0 {
		return rejectf(RejectNoTarget, "NO ENEMY IN QUADRANT")
	}
	if amount <= 0 {
		return rejectf(RejectInvalidParameter, "INVALID PHASER ENERGY")
	}
	if amount > sh.Energy {
		return rejectf(RejectInsufficient, "ONLY %d AVAILABLE", sh.Energy)
	}

	sh.Energy -= amount
	perTarget := float64(amount) / float64(living)

	destroyed := 0
	for i := range q.HostileCount() {
		h, at := q.hostile(i)
		if h.Energy <= 0 {
			continue
		}
		hit, ok := hitStrength(s.rng, perTarget, sh.Sector, at)
		if !ok {
			continue
		}
		h.Energy -= hit
		if h.Energy <= 0 {
			q.destroyHostile(i)
			destroyed++
			ev.add(fmt.Sprintf("KLINGON AT %d,%d DESTROYED", at.X, at.Y), MsgCombat)
			continue
		}
		ev.add(fmt.Sprintf("%d hit on %d,%d", hit, at.X, at.Y), MsgCombat)
	}

	if destroyed > 0 {
		s.hostilesDestroyed(destroyed)
	}
	if s.outcome == Won {
		ev.add("ALL KLINGONS DESTROYED - YOU WIN!", MsgDiscovery)
	}
	return nil
}

func (s *Session) fireTorpedo(ev *events, course float64) error {
	sh := &s.ship
	q := s.quadrant
	if sh.Torpedoes <= 0 {
		return rejectf(RejectInsufficient, "NO TORPEDOES LEFT")
	}
	if !sh.Damage.Operational(world.PhotonTubes) {
		return rejectf(RejectDeviceDamaged, "PHOTON TUBES INOPERATIVE")
	}
	if !validCourse(course) {
		return rejectf(RejectInvalidParameter, "INVALID COURSE (1-8)")
	}
	if sh.Energy < torpedoEnergyCost {
		return rejectf(RejectInsufficient, "INSUFFICIENT ENERGY")
	}

	sh.Torpedoes--
	sh.Energy -= torpedoEnergyCost

	dx, dy := courseDirection(course)
	tx, ty := float64(sh.Sector.X), float64(sh.Sector.Y)
	ev.add("TORPEDO TRACK:", MsgCombat)

	for range s.Rules.TorpedoRange {
		tx += dx
		ty += dy
		at := quantize(tx, ty)
		if !at.InBounds() {
			break
		}
		ev.add(fmt.Sprintf("%d,%d", at.X, at.Y), MsgCombat)

		cell := q.Grid.Get(at)
		switch cell.Kind {
		case world.CellHostile:
			q.destroyHostile(cell.Hostile)
			ev.add("KLINGON DESTROYED!", MsgCombat)
			s.hostilesDestroyed(1)
			if s.outcome == Won {
				ev.add("ALL KLINGONS DESTROYED!", MsgDiscovery)
			}
			return nil
		case world.CellStar:
			ev.add("STAR ABSORBS TORPEDO", MsgCombat)
			return nil
		case world.CellBase:
			s.baseDestroyed()
			ev.add("STARBASE DESTROYED!", MsgCritical)
			return nil
		}
	}

	ev.add("MISSED", MsgCombat)
	return nil
}

// hostilesDestroyed books n kills in the current quadrant against the galaxy
// map and the mission counter, and settles the win condition.
func (s *Session) hostilesDestroyed(n int) {
	c := s.ship.Quadrant
	s.galaxy.removeHostiles(c, n)
	s.galaxy.Reveal(c)
	s.hostilesLeft -= n
	s.logger.Debug("hostiles destroyed", "quadrant", c, "count", n, "remaining", s.hostilesLeft)
	if s.hostilesLeft <= 0 {
		s.hostilesLeft = 0
		s.outcome = Won
	}
}

func (s *Session) baseDestroyed() {
	c := s.ship.Quadrant
	s.quadrant.destroyBase()
	s.galaxy.removeBase(c)
	s.galaxy.Reveal(c)
	s.basesLeft--
	s.ship.Docked = false
	s.logger.Info("starbase destroyed", "quadrant", c, "remaining", s.basesLeft)
}

// hostilesFire resolves return fire from every living hostile in the quadrant.
func (s *Session) hostilesFire(ev *events) {
	sh := &s.ship
	q := s.quadrant
	if sh.Docked || q.LivingHostiles() == 0 {
		return
	}

	for i := range q.HostileCount() {
		h, at := q.hostile(i)
		if h.Energy <= 0 {
			continue
		}
		hit, ok := hitStrength(s.rng, float64(h.Energy), at, sh.Sector)
		if !ok {
			continue
		}
		sh.Shields -= hit
		// Firing spends energy but never below 1: a hostile only dies to the player.
		h.Energy = max(1, int(float64(h.Energy)/(3+s.rng.Float64())))
		ev.add(fmt.Sprintf("%d hit from %d,%d", hit, at.X, at.Y), MsgCombat)

		if sh.Shields < 0 {
			sh.Shields = 0
			s.outcome = Lost
			ev.add("SHIELDS DOWN - DESTROYED!", MsgCritical)
			return
		}

		if hit >= deviceDamageHit && s.rng.Float64() > deviceDamageOdds {
			dev := world.Device(randRange(s.rng, int(world.WarpEngines), int(world.LibraryComputer)))
			sh.Damage.Damage(dev, float64(hit)/deviceDamageDivide+s.rng.Float64()*0.5)
			ev.add(fmt.Sprintf("%s DAMAGED", dev.Name()), MsgWarning)
		}
	}
}
