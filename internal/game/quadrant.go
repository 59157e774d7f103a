package game

import (
	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/supertrek/internal/world"
)

// Position places a quadrant entity on the sector grid.
type Position struct {
	Sector world.Coord
}

// Hostile is an enemy warship. Energy <= 0 means destroyed.
type Hostile struct {
	Energy int
}

// Base tags the starbase entity.
type Base struct{}

// Star tags an immovable star.
type Star struct{}

// Quadrant is the active 8x8 sector grid and the entities placed on it.
// It is rebuilt from scratch every time the ship enters a quadrant.
type Quadrant struct {
	Coord world.Coord
	Grid  world.SectorGrid

	ecs        *ecs.World
	posMap     *ecs.Map[Position]
	hostileMap *ecs.Map[Hostile]

	hostiles []ecs.Entity // placement order; Cell.Hostile indexes this
	base     ecs.Entity
	hasBase  bool
}

func newQuadrant(c world.Coord) *Quadrant {
	w := ecs.NewWorld(32)
	return &Quadrant{
		Coord:      c,
		ecs:        w,
		posMap:     ecs.NewMap[Position](w),
		hostileMap: ecs.NewMap[Hostile](w),
	}
}

func (q *Quadrant) addShip(at world.Coord) {
	q.Grid.Set(at, world.Cell{Kind: world.CellShip})
}

func (q *Quadrant) addHostile(at world.Coord, energy int) int {
	e := ecs.NewMap2[Position, Hostile](q.ecs).NewEntity(&Position{Sector: at}, &Hostile{Energy: energy})
	idx := len(q.hostiles)
	q.hostiles = append(q.hostiles, e)
	q.Grid.Set(at, world.Cell{Kind: world.CellHostile, Hostile: idx})
	return idx
}

func (q *Quadrant) addBase(at world.Coord) {
	q.base = ecs.NewMap2[Position, Base](q.ecs).NewEntity(&Position{Sector: at}, &Base{})
	q.hasBase = true
	q.Grid.Set(at, world.Cell{Kind: world.CellBase})
}

func (q *Quadrant) addStar(at world.Coord) {
	ecs.NewMap2[Position, Star](q.ecs).NewEntity(&Position{Sector: at}, &Star{})
	q.Grid.Set(at, world.Cell{Kind: world.CellStar})
}

// hostile returns the components of hostile i.
func (q *Quadrant) hostile(i int) (*Hostile, world.Coord) {
	e := q.hostiles[i]
	return q.hostileMap.Get(e), q.posMap.Get(e).Sector
}

// HostileCount returns how many hostiles were placed, destroyed ones included.
func (q *Quadrant) HostileCount() int {
	return len(q.hostiles)
}

// LivingHostiles counts hostiles with energy left.
func (q *Quadrant) LivingHostiles() int {
	n := 0
	query := ecs.NewFilter1[Hostile](q.ecs).Query()
	for query.Next() {
		if query.Get().Energy > 0 {
			n++
		}
	}
	return n
}

// destroyHostile zeroes hostile i and clears its sector.
func (q *Quadrant) destroyHostile(i int) {
	h, at := q.hostile(i)
	h.Energy = 0
	q.Grid.Clear(at)
}

// BaseSector returns the starbase position, if the quadrant still has one.
func (q *Quadrant) BaseSector() (world.Coord, bool) {
	if !q.hasBase {
		return world.Coord{}, false
	}
	return q.posMap.Get(q.base).Sector, true
}

func (q *Quadrant) destroyBase() {
	at, ok := q.BaseSector()
	if !ok {
		return
	}
	q.Grid.Clear(at)
	q.ecs.RemoveEntity(q.base)
	q.hasBase = false
}

// Stars returns the positions of every star in the quadrant.
func (q *Quadrant) Stars() []world.Coord {
	var out []world.Coord
	query := ecs.NewFilter2[Position, Star](q.ecs).Query()
	for query.Next() {
		pos, _ := query.Get()
		out = append(out, pos.Sector)
	}
	return out
}
