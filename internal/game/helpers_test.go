package game

import (
	"io"
	"log/slog"
	"testing"

	"github.com/spacehole-rogue/supertrek/internal/world"
)

// scriptedRand replays fixed draws, then falls back to constants.
type scriptedRand struct {
	floats []float64
	ints   []int
	float  float64 // returned once floats runs out
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return r.float
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestSession creates a seeded session with logging discarded.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(WithSeed(42), WithLogger(quietLogger()))
}

// scene describes the contents of a hand-built quadrant.
type scene struct {
	ship     world.Coord
	hostiles []HostileView
	base     *world.Coord
	stars    []world.Coord
	// alone empties every other quadrant so these hostiles are the last ones.
	alone bool
}

// arrange replaces the current quadrant with sc and keeps the galaxy map and
// mission counters consistent with it.
func arrange(t *testing.T, s *Session, sc scene) *Quadrant {
	t.Helper()
	c := s.ship.Quadrant
	if sc.alone {
		s.galaxy.cells = [world.Size][world.Size]QuadrantSummary{}
	}

	q := newQuadrant(c)
	s.ship.Sector = sc.ship
	s.ship.Docked = false
	q.addShip(sc.ship)
	for _, h := range sc.hostiles {
		q.addHostile(h.Sector, h.Energy)
	}
	bases := 0
	if sc.base != nil {
		q.addBase(*sc.base)
		bases = 1
	}
	for _, st := range sc.stars {
		q.addStar(st)
	}
	s.quadrant = q

	s.galaxy.cells[c.Y-1][c.X-1] = QuadrantSummary{
		Hostiles: len(sc.hostiles),
		Bases:    bases,
		Stars:    len(sc.stars),
	}
	s.galaxy.Reveal(c)
	s.hostilesLeft = s.galaxy.TotalHostiles()
	s.basesLeft = s.galaxy.TotalBases()
	return q
}

func at(x, y int) world.Coord {
	return world.Coord{X: x, Y: y}
}

func containsMsg(msgs []string, want string) bool {
	for _, m := range msgs {
		if m == want {
			return true
		}
	}
	return false
}

func equalMsgs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
