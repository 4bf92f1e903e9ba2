package assemble

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"dungeonforge/pkg/engine/world"
)

// Side is one face of a cell: the cell and the direction it faces
type Side struct {
	From world.Location
	Dir  world.Direction
}

// To returns the cell on the other side of the face
func (s Side) To() world.Location {
	return s.From.Step(s.Dir)
}

// OpenedSides returns the open faces of cells that look onto an empty in-bounds cell
func OpenedSides(grid *world.Grid, cells []world.Location) []Side {
	return openedSidesWhere(grid, cells, (*world.Cell).IsEmpty)
}

// openedSidesWhere returns the open faces of cells whose neighbour satisfies onto
func openedSidesWhere(grid *world.Grid, cells []world.Location, onto func(*world.Cell) bool) []Side {
	var out []Side
	for _, loc := range cells {
		c := grid.At(loc)
		if c == nil || c.IsEmpty() {
			continue
		}
		for _, dir := range world.AllDirections() {
			if !c.IsOpen(dir) {
				continue
			}
			if n := grid.Neighbor(loc, dir); n != nil && onto(n) {
				out = append(out, Side{From: loc, Dir: dir})
			}
		}
	}
	return out
}

// RoomSetDoors returns the open faces of a room-set that lead out of it.
// Doors onto occupied cells are included only when includeConnected is set.
func RoomSetDoors(grid *world.Grid, roomSets *Table, label int, includeConnected bool) []Side {
	var out []Side
	for _, loc := range roomSets.Cells(label) {
		c := grid.At(loc)
		for _, dir := range world.AllDirections() {
			if !c.IsOpen(dir) {
				continue
			}
			n := grid.Neighbor(loc, dir)
			if n == nil || roomSets.LabelAt(n.Location()) == label {
				continue
			}
			if !includeConnected && !n.IsEmpty() {
				continue
			}
			out = append(out, Side{From: loc, Dir: dir})
		}
	}
	return out
}

// ForeignNeighbors returns the faces where a region touches an occupied
// cell of a different region
func ForeignNeighbors(grid *world.Grid, table *Table, label int) []Side {
	var out []Side
	for _, loc := range table.Cells(label) {
		for _, dir := range world.AllDirections() {
			n := grid.Neighbor(loc, dir)
			if n == nil || n.IsEmpty() {
				continue
			}
			if table.LabelAt(n.Location()) != label {
				out = append(out, Side{From: loc, Dir: dir})
			}
		}
	}
	return out
}

// CellsByKind returns every cell holding a template of kind, row-major
func CellsByKind(grid *world.Grid, kind world.Kind) []world.Location {
	var out []world.Location
	grid.ForEachCell(func(row, col int, c *world.Cell) {
		if c.Room != nil && c.Room.Kind() == kind {
			out = append(out, world.Loc(row, col))
		}
	})
	return out
}

// ReachableFrom returns every cell reachable from start by walking through
// matching openings. An empty start reaches nothing.
func ReachableFrom(grid *world.Grid, start world.Location) mapset.Set[world.Location] {
	visited := mapset.New[world.Location]()
	c := grid.At(start)
	if c == nil || c.IsEmpty() {
		return visited
	}

	q := queue.New[world.Location]()
	q.Enqueue(start)
	visited.Put(start)
	for !q.Empty() {
		loc := q.Dequeue()
		for _, dir := range world.AllDirections() {
			next := loc.Step(dir)
			if visited.Has(next) || !grid.IsTilesConnected(loc.Row, loc.Col, dir) {
				continue
			}
			visited.Put(next)
			q.Enqueue(next)
		}
	}
	return visited
}
