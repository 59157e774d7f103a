package game

import (
	"math"

	"github.com/spacehole-rogue/supertrek/internal/world"
)

// courseVectors maps course 1..8 to unit sector steps, counter-clockwise
// from +Y. Index 0 is unused.
var courseVectors = [9][2]float64{
	{0, 0},
	{0, 1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
}

func validCourse(course float64) bool {
	return course >= 1 && course < 9
}

// courseDirection linearly interpolates between the two course vectors that
// bracket course. Course 8.x blends toward course 1.
func courseDirection(course float64) (dx, dy float64) {
	idx := int(course)
	frac := course - float64(idx)
	next := idx + 1
	if idx >= 8 {
		next = 1
	}
	v1, v2 := courseVectors[idx], courseVectors[next]
	dx = v1[0] + (v2[0]-v1[0])*frac
	dy = v1[1] + (v2[1]-v1[1])*frac
	return dx, dy
}

// quantize rounds a continuous position to the nearest sector, ties to even.
func quantize(fx, fy float64) world.Coord {
	return world.Coord{X: int(math.RoundToEven(fx)), Y: int(math.RoundToEven(fy))}
}
