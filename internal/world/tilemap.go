package world

import "math"

// Size is the edge length of both the galaxy (in quadrants) and a quadrant (in sectors).
const Size = 8

// Coord is a 1-indexed position on an 8x8 grid.
type Coord struct {
	X, Y int
}

// InBounds reports whether c lies within [1,Size] on both axes.
func (c Coord) InBounds() bool {
	return c.X >= 1 && c.X <= Size && c.Y >= 1 && c.Y <= Size
}

// Clamp returns c pulled back onto the grid edge.
func (c Coord) Clamp() Coord {
	return Coord{X: max(1, min(Size, c.X)), Y: max(1, min(Size, c.Y))}
}

// Distance returns the Euclidean distance between two coordinates.
func (c Coord) Distance(o Coord) float64 {
	dx := float64(c.X - o.X)
	dy := float64(c.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Chebyshev returns the king-move distance between two coordinates.
func (c Coord) Chebyshev(o Coord) int {
	return max(abs(c.X-o.X), abs(c.Y-o.Y))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// CellKind is the occupant type of a sector.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellShip
	CellHostile
	CellBase
	CellStar
)

// Cell is a single sector. Hostile is the quadrant-local hostile index and is
// only meaningful when Kind == CellHostile.
type Cell struct {
	Kind    CellKind
	Hostile int
}

// SectorGrid is the 8x8 occupancy grid of the active quadrant.
type SectorGrid struct {
	cells [Size][Size]Cell
}

// Get returns the cell at c. Out-of-bounds returns an empty cell.
func (g *SectorGrid) Get(c Coord) Cell {
	if !c.InBounds() {
		return Cell{}
	}
	return g.cells[c.Y-1][c.X-1]
}

// Set writes a cell at c. Out-of-bounds writes are ignored.
func (g *SectorGrid) Set(c Coord, cell Cell) {
	if c.InBounds() {
		g.cells[c.Y-1][c.X-1] = cell
	}
}

// Clear empties the sector at c.
func (g *SectorGrid) Clear(c Coord) {
	g.Set(c, Cell{})
}

// IsEmpty reports whether c is on the grid and unoccupied.
func (g *SectorGrid) IsEmpty(c Coord) bool {
	return c.InBounds() && g.cells[c.Y-1][c.X-1].Kind == CellEmpty
}

// Rows returns a copy of the grid, row-major, indexed [y-1][x-1].
func (g *SectorGrid) Rows() [Size][Size]Cell {
	return g.cells
}

// Count returns how many sectors hold the given kind.
func (g *SectorGrid) Count(kind CellKind) int {
	n := 0
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x].Kind == kind {
				n++
			}
		}
	}
	return n
}
