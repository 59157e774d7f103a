package game

import (
	"math"
	"testing"

	"github.com/spacehole-rogue/supertrek/internal/world"
)

func TestDo_PhasersDrawReturnFire(t *testing.T) {
	s := newTestSession(t)
	arrange(t, s, scene{ship: at(4, 4), hostiles: []HostileView{{Sector: at(8, 8), Energy: 1000}}})
	s.rng = &scriptedRand{}
	s.ship.Shields = 1000
	stardate := s.ship.Stardate

	msgs := s.Do(Command{Kind: CmdPhasers, Amount: 100})

	want := []string{"35 hit on 8,8", "341 hit from 8,8"}
	if !equalMsgs(msgs, want) {
		t.Errorf("got %q, want %q", msgs, want)
	}
	if s.ship.Shields != 659 {
		t.Errorf("expected shields 659, got %d", s.ship.Shields)
	}
	if got := s.ship.Stardate - stardate; math.Abs(got-weaponsTime) > 1e-9 {
		t.Errorf("weapons fire should take %v stardates, took %v", weaponsTime, got)
	}
}

func TestDo_ShieldsDoNotDrawFire(t *testing.T) {
	s := newTestSession(t)
	arrange(t, s, scene{ship: at(4, 4), hostiles: []HostileView{{Sector: at(5, 4), Energy: 200}}})
	stardate := s.ship.Stardate

	msgs := s.Do(Command{Kind: CmdShields, Amount: 500})

	if !equalMsgs(msgs, []string{"SHIELDS SET TO 500"}) {
		t.Errorf("unexpected messages %q", msgs)
	}
	if s.ship.Shields != 500 || s.ship.Stardate != stardate {
		t.Errorf("shields only: shields %d, stardate moved %v", s.ship.Shields, s.ship.Stardate-stardate)
	}
}

func TestDo_RejectedActionEndsTurn(t *testing.T) {
	s := newTestSession(t)
	arrange(t, s, scene{ship: at(4, 4), hostiles: []HostileView{{Sector: at(5, 4), Energy: 200}}})
	s.ship.Damage.Damage(world.PhaserControl, 1)
	s.ship.Shields = 400
	before := s.ship

	msgs := s.Do(Command{Kind: CmdPhasers, Amount: 100})

	if !equalMsgs(msgs, []string{"PHASER CONTROL INOPERATIVE"}) {
		t.Errorf("unexpected messages %q", msgs)
	}
	if s.ship != before {
		t.Error("a rejected command must not draw fire or advance time")
	}
}

func TestDo_NavigateThenReturnFire(t *testing.T) {
	s := newTestSession(t)
	arrange(t, s, scene{ship: at(1, 1), hostiles: []HostileView{{Sector: at(8, 8), Energy: 200}}})
	s.rng = &scriptedRand{}
	s.ship.Shields = 1000

	msgs := s.Do(Command{Kind: CmdNavigate, Course: 7, Warp: 0.25})

	if len(msgs) != 2 || msgs[0] != "MOVED TO 3,1" {
		t.Fatalf("unexpected messages %q", msgs)
	}
	if s.ship.Shields >= 1000 {
		t.Error("hostile should have fired after the move")
	}
}

func TestDo_WinEndsTurn(t *testing.T) {
	s := newTestSession(t)
	arrange(t, s, scene{
		ship:     at(4, 4),
		hostiles: []HostileView{{Sector: at(5, 4), Energy: 100}},
		alone:    true,
	})

	msgs := s.Do(Command{Kind: CmdTorpedo, Course: 7})

	want := []string{"TORPEDO TRACK:", "5,4", "KLINGON DESTROYED!", "ALL KLINGONS DESTROYED!", "=== MISSION SUCCESS ==="}
	if !equalMsgs(msgs, want) {
		t.Errorf("got %q, want %q", msgs, want)
	}
	recent := s.Log.Recent(1)
	if recent[0].Text != "=== MISSION SUCCESS ===" || recent[0].Priority != MsgDiscovery {
		t.Errorf("banner should be logged last, got %+v", recent[0])
	}
}

func TestDo_UnknownCommand(t *testing.T) {
	s := newTestSession(t)
	msgs := s.Do(Command{})
	if !equalMsgs(msgs, []string{"UNKNOWN COMMAND"}) {
		t.Errorf("unexpected messages %q", msgs)
	}
}
