// Package world provides the tile grid and the template/filter model
// used to assemble it.
package world

// Cell is a single tile of the grid
type Cell struct {
	Row int
	Col int

	// Room is the placed template, nil while the cell is empty.
	Room Template
	// Permanent cells are never changed by placement, carving or pruning.
	Permanent bool
}

// IsEmpty returns true if no template has been placed in the cell
func (c *Cell) IsEmpty() bool {
	return c.Room == nil
}

// IsRoom returns true if the cell holds a Room-kind template
func (c *Cell) IsRoom() bool {
	return c.Room != nil && c.Room.Kind() == Room
}

// IsPassage returns true if the cell holds a Passage-kind template
func (c *Cell) IsPassage() bool {
	return c.Room != nil && c.Room.Kind() == Passage
}

// IsOpen returns true if the cell's template opens toward dir
func (c *Cell) IsOpen(dir Direction) bool {
	return c.Room != nil && c.Room.IsOpen(dir)
}

// Location returns the cell's coordinate
func (c *Cell) Location() Location {
	return Location{Row: c.Row, Col: c.Col}
}

// reset empties the cell and clears permanence
func (c *Cell) reset() {
	c.Room = nil
	c.Permanent = false
}
