package game

import "github.com/spacehole-rogue/supertrek/internal/world"

// QuadrantSummary is what the galaxy map records about one quadrant.
type QuadrantSummary struct {
	Hostiles int // 0..3
	Bases    int // 0..1
	Stars    int // 1..8
}

// Galaxy holds the true quadrant summaries plus the player's known overlay.
// Both grids are indexed [y-1][x-1].
type Galaxy struct {
	cells    [world.Size][world.Size]QuadrantSummary
	known    [world.Size][world.Size]QuadrantSummary
	revealed [world.Size][world.Size]bool
}

// Hostile-count probability bands, tested high to low against one U(0,1) draw.
const (
	bandThree = 0.98
	bandTwo   = 0.95
	bandOne   = 0.80
	baseOdds  = 0.96 // a base exists when U(0,1) exceeds this
)

// generateGalaxy fills all 64 quadrants and guarantees at least one base.
func generateGalaxy(rng Rand) *Galaxy {
	g := &Galaxy{}
	bases := 0

	for y := range world.Size {
		for x := range world.Size {
			var s QuadrantSummary
			r := rng.Float64()
			switch {
			case r > bandThree:
				s.Hostiles = 3
			case r > bandTwo:
				s.Hostiles = 2
			case r > bandOne:
				s.Hostiles = 1
			}
			if rng.Float64() > baseOdds {
				s.Bases = 1
			}
			s.Stars = randRange(rng, 1, 8)
			g.cells[y][x] = s
			bases += s.Bases
		}
	}

	if bases == 0 {
		qx := rng.IntN(world.Size)
		qy := rng.IntN(world.Size)
		cell := &g.cells[qy][qx]
		// A quadrant guarding the only base gets one more hostile, but
		// never beyond the three-hostile cap.
		if cell.Hostiles < 2 {
			cell.Hostiles++
		}
		cell.Bases++
	}

	return g
}

// Summary returns the true summary of quadrant c.
func (g *Galaxy) Summary(c world.Coord) QuadrantSummary {
	if !c.InBounds() {
		return QuadrantSummary{}
	}
	return g.cells[c.Y-1][c.X-1]
}

// Known returns the summary recorded for c and whether c has been revealed.
func (g *Galaxy) Known(c world.Coord) (QuadrantSummary, bool) {
	if !c.InBounds() {
		return QuadrantSummary{}, false
	}
	return g.known[c.Y-1][c.X-1], g.revealed[c.Y-1][c.X-1]
}

// Reveal copies the true summary of c into the known overlay.
func (g *Galaxy) Reveal(c world.Coord) {
	if !c.InBounds() {
		return
	}
	g.known[c.Y-1][c.X-1] = g.cells[c.Y-1][c.X-1]
	g.revealed[c.Y-1][c.X-1] = true
}

// TotalHostiles sums hostiles across every quadrant.
func (g *Galaxy) TotalHostiles() int {
	n := 0
	for y := range g.cells {
		for x := range g.cells[y] {
			n += g.cells[y][x].Hostiles
		}
	}
	return n
}

// TotalBases sums bases across every quadrant.
func (g *Galaxy) TotalBases() int {
	n := 0
	for y := range g.cells {
		for x := range g.cells[y] {
			n += g.cells[y][x].Bases
		}
	}
	return n
}

func (g *Galaxy) removeHostiles(c world.Coord, n int) {
	cell := &g.cells[c.Y-1][c.X-1]
	cell.Hostiles = max(0, cell.Hostiles-n)
}

func (g *Galaxy) removeBase(c world.Coord) {
	cell := &g.cells[c.Y-1][c.X-1]
	cell.Bases = max(0, cell.Bases-1)
}
