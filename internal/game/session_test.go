package game

import (
	"errors"
	"testing"

	"github.com/spacehole-rogue/supertrek/internal/world"
)

func TestNewSession_Briefing(t *testing.T) {
	// Every draw is the minimum: stardate 2000, 25 days, quadrant 1,1,
	// sector 1,1, an empty galaxy with a forced base at 1,1.
	s := NewSession(WithRand(&scriptedRand{}), WithLogger(quietLogger()))

	sh := s.Ship()
	if sh.Stardate != 2000 || sh.StartStardate != 2000 {
		t.Errorf("expected stardate 2000, got %v/%v", sh.Stardate, sh.StartStardate)
	}
	if sh.TimeLimit != 25 {
		t.Errorf("expected 25 day limit, got %d", sh.TimeLimit)
	}
	if sh.Quadrant != at(1, 1) || sh.Sector != at(1, 1) {
		t.Errorf("expected ship at 1,1/1,1, got %v/%v", sh.Quadrant, sh.Sector)
	}
	if sh.Energy != 3000 || sh.Torpedoes != 10 || sh.Shields != 0 {
		t.Errorf("unexpected starting stores: %+v", sh)
	}

	want := []string{"COMBAT AREA - 1 KLINGONS", "DESTROY 1 KLINGONS", "25 DAYS, 1 BASES"}
	got := s.Log.Recent(10)
	if len(got) != len(want) {
		t.Fatalf("expected %d briefing lines, got %d: %+v", len(want), len(got), got)
	}
	for i, m := range got {
		if m.Text != want[i] {
			t.Errorf("briefing[%d]: got %q, want %q", i, m.Text, want[i])
		}
	}
}

func TestEnterQuadrant_PlacementExhaustion(t *testing.T) {
	// Every placement draw lands on the ship's sector, so nothing fits.
	s := NewSession(WithRand(&scriptedRand{}), WithLogger(quietLogger()))

	q := s.quadrant
	if q.HostileCount() != 0 || len(q.Stars()) != 0 {
		t.Errorf("expected no placed entities, got %d hostiles and %d stars", q.HostileCount(), len(q.Stars()))
	}
	if _, ok := q.BaseSector(); ok {
		t.Error("expected base placement to fail")
	}
	if q.Grid.Count(world.CellShip) != 1 {
		t.Errorf("expected the ship alone on the grid")
	}
}

func TestEnterQuadrant_PlacesSummary(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		s := NewSession(WithSeed(seed), WithLogger(quietLogger()))
		for y := 1; y <= world.Size; y++ {
			for x := 1; x <= world.Size; x++ {
				s.EnterQuadrant(x, y)
				want := s.galaxy.Summary(at(x, y))
				if s.outcome != InProgress {
					t.Fatalf("seed %d: entering a quadrant ended the game", seed)
				}

				g := &s.quadrant.Grid
				if g.Count(world.CellHostile) != want.Hostiles {
					t.Errorf("seed %d q%d,%d: hostiles %d, want %d", seed, x, y, g.Count(world.CellHostile), want.Hostiles)
				}
				if g.Count(world.CellBase) != want.Bases {
					t.Errorf("seed %d q%d,%d: bases %d, want %d", seed, x, y, g.Count(world.CellBase), want.Bases)
				}
				if g.Count(world.CellStar) != want.Stars {
					t.Errorf("seed %d q%d,%d: stars %d, want %d", seed, x, y, g.Count(world.CellStar), want.Stars)
				}
				if g.Get(s.ship.Sector).Kind != world.CellShip {
					t.Errorf("seed %d q%d,%d: ship not at its sector", seed, x, y)
				}
				for _, h := range s.Sector().Hostiles {
					if h.Energy < 100 || h.Energy >= 300 {
						t.Errorf("seed %d: hostile energy %d outside [100,300)", seed, h.Energy)
					}
				}
				if _, known := s.galaxy.Known(at(x, y)); !known {
					t.Errorf("seed %d: quadrant %d,%d not revealed", seed, x, y)
				}
			}
		}
	}
}

func TestEnterQuadrant_Notices(t *testing.T) {
	s := newTestSession(t)
	base := at(5, 5)
	arrange(t, s, scene{ship: at(4, 4), base: &base})
	s.galaxy.cells[s.ship.Quadrant.Y-1][s.ship.Quadrant.X-1] = QuadrantSummary{Hostiles: 2, Bases: 1, Stars: 1}

	// Pin the draws: hostiles at 1,1 and 8,1, base at 5,4, star at 8,8.
	s.rng = &scriptedRand{
		ints:  []int{0, 0, 7, 0, 4, 3, 7, 7},
		float: 0.5,
	}
	msgs := s.EnterQuadrant(s.ship.Quadrant.X, s.ship.Quadrant.Y)

	want := []string{"COMBAT AREA - 2 KLINGONS", "DOCKED AT STARBASE"}
	if !equalMsgs(msgs, want) {
		t.Errorf("got %q, want %q", msgs, want)
	}
	if s.Condition() != ConditionDocked {
		t.Errorf("expected DOCKED, got %s", s.Condition())
	}
	for _, h := range s.Sector().Hostiles {
		if h.Energy != 200 {
			t.Errorf("expected hostile energy 200 at U=0.5, got %d", h.Energy)
		}
	}
}

func TestEnterQuadrant_RejectsOutOfRange(t *testing.T) {
	s := newTestSession(t)
	before := s.ship

	msgs := s.EnterQuadrant(9, 1)
	if !equalMsgs(msgs, []string{"INVALID QUADRANT (1-8)"}) {
		t.Errorf("unexpected messages %q", msgs)
	}
	if s.ship != before {
		t.Error("rejected entry must not change the ship")
	}
}

func TestTerminalState_GatesCommands(t *testing.T) {
	s := newTestSession(t)
	s.outcome = Lost
	before := s.ship

	cmds := map[string]func() []string{
		"navigate": func() []string { return s.Navigate(1, 1) },
		"phasers":  func() []string { return s.FirePhasers(100) },
		"torpedo":  func() []string { return s.FireTorpedo(1) },
		"shields":  func() []string { return s.SetShields(100) },
		"enter":    func() []string { return s.EnterQuadrant(1, 1) },
		"fire":     func() []string { return s.HostilesFire() },
		"do":       func() []string { return s.Do(Command{Kind: CmdShields, Amount: 5}) },
	}
	for name, fn := range cmds {
		msgs := fn()
		if !equalMsgs(msgs, []string{"GAME OVER - RESET REQUIRED"}) {
			t.Errorf("%s: expected game over rejection, got %q", name, msgs)
		}
		if s.ship != before {
			t.Errorf("%s: state changed after game over", name)
		}
	}

	s.Reset()
	if s.Outcome() != InProgress {
		t.Errorf("reset should start a fresh game, got %s", s.Outcome())
	}
}

func TestReset_Deterministic(t *testing.T) {
	a := NewSession(WithSeed(7), WithLogger(quietLogger()))
	b := NewSession(WithSeed(7), WithLogger(quietLogger()))

	if a.Ship() != b.Ship() {
		t.Errorf("same seed produced different ships: %+v vs %+v", a.Ship(), b.Ship())
	}
	if a.Sector().Cells != b.Sector().Cells {
		t.Error("same seed produced different quadrants")
	}
	if a.galaxy.cells != b.galaxy.cells {
		t.Error("same seed produced different galaxies")
	}
}

func TestRejection_Sentinels(t *testing.T) {
	err := rejectf(RejectDeviceDamaged, "PHASER CONTROL INOPERATIVE")

	if !errors.Is(err, ErrDeviceDamaged) {
		t.Error("expected device damaged rejection to match its sentinel")
	}
	if errors.Is(err, ErrInsufficient) {
		t.Error("rejection matched the wrong sentinel")
	}
	if KindOf(err) != RejectDeviceDamaged {
		t.Errorf("KindOf = %q", KindOf(err))
	}
	if KindOf(errors.New("boom")) != "" {
		t.Error("plain errors have no rejection kind")
	}
	if err.Error() != "PHASER CONTROL INOPERATIVE" {
		t.Errorf("message lost: %q", err.Error())
	}
}

func TestMessageLog_Bounded(t *testing.T) {
	l := NewMessageLog(3)
	for _, s := range []string{"a", "b", "c", "d"} {
		l.Add(s, MsgInfo)
	}
	got := l.Recent(10)
	if len(got) != 3 || got[0].Text != "b" || got[2].Text != "d" {
		t.Errorf("expected b..d, got %+v", got)
	}
	if r := l.Recent(1); r[0].Text != "d" {
		t.Errorf("expected most recent d, got %q", r[0].Text)
	}
	l.Clear()
	if len(l.Recent(5)) != 0 {
		t.Error("expected empty log after Clear")
	}
}
