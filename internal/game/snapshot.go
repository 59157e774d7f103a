package game

import (
	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/supertrek/internal/world"
)

// HostileView is a read-only copy of one hostile.
type HostileView struct {
	Sector world.Coord
	Energy int
}

// SectorView is a read-only copy of the active quadrant.
type SectorView struct {
	Quadrant world.Coord
	Cells    [world.Size][world.Size]world.Cell // [y-1][x-1]
	Hostiles []HostileView                      // living only
	Base     *world.Coord
	Stars    []world.Coord
}

// At returns the cell at sector c.
func (v SectorView) At(c world.Coord) world.Cell {
	if !c.InBounds() {
		return world.Cell{}
	}
	return v.Cells[c.Y-1][c.X-1]
}

// Sector snapshots the active quadrant for rendering.
func (s *Session) Sector() SectorView {
	q := s.quadrant
	v := SectorView{
		Quadrant: q.Coord,
		Cells:    q.Grid.Rows(),
		Stars:    q.Stars(),
	}
	if at, ok := q.BaseSector(); ok {
		v.Base = &at
	}

	query := ecs.NewFilter2[Position, Hostile](q.ecs).Query()
	for query.Next() {
		pos, h := query.Get()
		if h.Energy > 0 {
			v.Hostiles = append(v.Hostiles, HostileView{Sector: pos.Sector, Energy: h.Energy})
		}
	}
	return v
}

// GalaxyView is the player's chart of the galaxy. Only revealed quadrants
// carry a summary.
type GalaxyView struct {
	Current  world.Coord
	Known    [world.Size][world.Size]QuadrantSummary // [y-1][x-1]
	Revealed [world.Size][world.Size]bool
}

// Galaxy snapshots the known overlay.
func (s *Session) Galaxy() GalaxyView {
	return GalaxyView{
		Current:  s.ship.Quadrant,
		Known:    s.galaxy.known,
		Revealed: s.galaxy.revealed,
	}
}
