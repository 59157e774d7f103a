package game

import (
	"fmt"

	"github.com/spacehole-rogue/supertrek/internal/world"
)

// Ship is the player's vessel.
type Ship struct {
	Quadrant world.Coord
	Sector   world.Coord

	Energy           int
	InitialEnergy    int
	Shields          int
	Torpedoes        int
	InitialTorpedoes int

	Stardate      float64
	StartStardate float64
	TimeLimit     int

	Docked bool
	Damage world.DamageVector
}

// TimeRemaining is the mission deadline minus the current stardate.
func (sh *Ship) TimeRemaining() float64 {
	return sh.StartStardate + float64(sh.TimeLimit) - sh.Stardate
}

// resupply is what a starbase does for a docked ship.
func (sh *Ship) resupply() int {
	sh.Energy = sh.InitialEnergy
	sh.Torpedoes = sh.InitialTorpedoes
	sh.Shields = 0
	return sh.Damage.RepairAll()
}

// checkDocking recomputes the docked flag and resupplies the ship when it
// sits next to the quadrant's base. Returns true if the ship was not docked
// before and is now.
func (s *Session) checkDocking() bool {
	was := s.ship.Docked
	base, ok := s.quadrant.BaseSector()
	s.ship.Docked = ok && s.ship.Sector.Chebyshev(base) <= 1
	if !s.ship.Docked {
		return false
	}
	repaired := s.ship.resupply()
	if !was {
		s.logger.Debug("docked", "base", base, "repaired", repaired)
	}
	return !was
}

func (s *Session) setShields(ev *events, amount int) error {
	sh := &s.ship
	if !sh.Damage.Operational(world.ShieldControl) {
		return rejectf(RejectDeviceDamaged, "SHIELD CONTROL INOPERATIVE")
	}
	if amount < 0 {
		return rejectf(RejectInvalidParameter, "INVALID SHIELD LEVEL")
	}
	total := sh.Energy + sh.Shields
	if amount > total {
		return rejectf(RejectInsufficient, "INSUFFICIENT ENERGY")
	}

	sh.Shields = amount
	sh.Energy = total - amount
	ev.add(fmt.Sprintf("SHIELDS SET TO %d", amount), MsgInfo)
	return nil
}
