package world

import (
	"fmt"
	"math"
)

// Location is a 0-based grid coordinate, row first
type Location struct {
	Row int
	Col int
}

// Loc is shorthand for Location{Row: row, Col: col}
func Loc(row, col int) Location {
	return Location{Row: row, Col: col}
}

// Step returns the location one cell away in the given direction
func (l Location) Step(dir Direction) Location {
	dr, dc := dir.Delta()
	return Location{Row: l.Row + dr, Col: l.Col + dc}
}

// DistanceSquared returns the squared Euclidean distance between two locations
func (l Location) DistanceSquared(o Location) int {
	dr := l.Row - o.Row
	dc := l.Col - o.Col
	return dr*dr + dc*dc
}

// Distance returns the Euclidean distance between two locations
func (l Location) Distance(o Location) float64 {
	return math.Sqrt(float64(l.DistanceSquared(o)))
}

// DirectionTo returns the direction from l to an orthogonally adjacent location.
// The second result is false when o is not adjacent.
func (l Location) DirectionTo(o Location) (Direction, bool) {
	for _, dir := range AllDirections() {
		if l.Step(dir) == o {
			return dir, true
		}
	}
	return 0, false
}

func (l Location) String() string {
	return fmt.Sprintf("%d,%d", l.Row, l.Col)
}
