package assemble

import (
	"errors"
	"math"

	"dungeonforge/pkg/engine/catalog"
	"dungeonforge/pkg/engine/world"
)

// RandomRoomsCount returns how many seed rooms to place for a grid of the
// given size: pct of the cells, never fewer than two.
func RandomRoomsCount(rows, cols int, pct float64) int {
	n := int(math.Round(float64(rows*cols) * pct))
	if n < 2 {
		return 2
	}
	return n
}

func (a *Assembler) eligible(row, col int) bool {
	return a.Mask == nil || a.Mask.Eligible(row, col)
}

// place draws a template matching f into a non-permanent cell. A filter
// nothing matches leaves the cell as it was.
func (a *Assembler) place(row, col int, f world.Filter) bool {
	c := a.Grid.GetCell(row, col)
	if c == nil || c.Permanent {
		return false
	}
	t, err := a.Catalog.FindRandom(f, a.rng)
	if err != nil {
		if errors.Is(err, catalog.ErrNoMatchingTemplate) {
			a.logf("place: no template for %d,%d", row, col)
		}
		return false
	}
	c.Room = t.Clone()
	return true
}

// PlotRandomRoom places a random template matching f at (row, col). Cells
// outside the mask, permanent cells and, unless ignoreCurrent is set,
// occupied cells are left alone.
func (a *Assembler) PlotRandomRoom(row, col int, f world.Filter, ignoreCurrent bool) bool {
	c := a.Grid.GetCell(row, col)
	if c == nil || c.Permanent || !a.eligible(row, col) {
		return false
	}
	if !ignoreCurrent && !c.IsEmpty() {
		return false
	}
	return a.place(row, col, f)
}

// RandomRoomPosition picks uniformly among the eligible, non-permanent
// cells that do not already hold a room
func (a *Assembler) RandomRoomPosition() (world.Location, bool) {
	var candidates []world.Location
	a.Grid.ForEachCell(func(row, col int, c *world.Cell) {
		if c.Permanent || c.IsRoom() || !a.eligible(row, col) {
			return
		}
		candidates = append(candidates, world.Loc(row, col))
	})
	if len(candidates) == 0 {
		return world.Location{}, false
	}
	return candidates[a.rng.Intn(len(candidates))], true
}

// PlotRandomRooms places up to count seed templates at random positions,
// each constrained by its neighbours. It returns how many were placed.
func (a *Assembler) PlotRandomRooms(count int) int {
	placed := 0
	for i := 0; i < count; i++ {
		loc, ok := a.RandomRoomPosition()
		if !ok {
			break
		}
		if a.PlotRandomRoom(loc.Row, loc.Col, a.Requirement(loc.Row, loc.Col), true) {
			placed++
		}
	}
	a.logf("seed: placed %d of %d", placed, count)
	return placed
}

// Fill places a template in every empty eligible cell, row-major, each
// constrained by the neighbours placed before it. It returns how many cells
// were filled.
func (a *Assembler) Fill() int {
	filled := 0
	a.Grid.ForEachCell(func(row, col int, c *world.Cell) {
		if c.Permanent || !c.IsEmpty() || !a.eligible(row, col) {
			return
		}
		if a.place(row, col, a.Requirement(row, col)) {
			filled++
		}
	})
	return filled
}
