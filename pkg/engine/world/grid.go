package world

import "fmt"

// Grid is a rectangular store of cells addressed by 0-based (row, col)
type Grid struct {
	cells []Cell
	rows  int
	cols  int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Resize(rows, cols)
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Resize discards every cell and reallocates storage. Non-positive
// dimensions leave an empty 0x0 grid.
func (g *Grid) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		g.rows, g.cols, g.cells = 0, 0, nil
		return
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([]Cell, rows*cols)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := &g.cells[row*cols+col]
			c.Row = row
			c.Col = col
		}
	}
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains reports whether loc is inside the grid
func (g *Grid) Contains(loc Location) bool {
	return g.IsValidPosition(loc.Row, loc.Col)
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

// At returns the cell at loc, or nil if out of bounds
func (g *Grid) At(loc Location) *Cell {
	return g.GetCell(loc.Row, loc.Col)
}

// Tile returns a copy of the cell at the given position
func (g *Grid) Tile(row, col int) (Cell, error) {
	c := g.GetCell(row, col)
	if c == nil {
		return Cell{}, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfRange, row, col, g.rows, g.cols)
	}
	return *c, nil
}

// SetTile stores the room and permanence of cell at the given position.
// The cell's own Row and Col are ignored.
func (g *Grid) SetTile(row, col int, cell Cell) error {
	c := g.GetCell(row, col)
	if c == nil {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfRange, row, col, g.rows, g.cols)
	}
	c.Room = cell.Room
	c.Permanent = cell.Permanent
	return nil
}

// Place puts a template in a non-permanent cell. It returns false when the
// cell is out of bounds or permanent.
func (g *Grid) Place(row, col int, t Template) bool {
	c := g.GetCell(row, col)
	if c == nil || c.Permanent {
		return false
	}
	c.Room = t
	return true
}

// ClearCell empties a non-permanent cell
func (g *Grid) ClearCell(row, col int) bool {
	return g.Place(row, col, nil)
}

// Clear resets every cell to empty and non-permanent
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].reset()
	}
}

// Neighbor returns the cell adjacent to loc in the given direction, or nil
func (g *Grid) Neighbor(loc Location, dir Direction) *Cell {
	if !dir.IsValid() {
		return nil
	}
	return g.At(loc.Step(dir))
}

// IsTilesConnected returns true if the cell at (row, col) and its neighbor
// toward dir are both occupied and open toward each other
func (g *Grid) IsTilesConnected(row, col int, dir Direction) bool {
	c := g.GetCell(row, col)
	if c == nil || c.Room == nil {
		return false
	}
	n := g.Neighbor(c.Location(), dir)
	if n == nil || n.Room == nil {
		return false
	}
	return c.Room.Connects(dir, n.Room)
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, &g.cells[row*g.cols+col])
		}
	}
}

// Count returns the number of cells holding a template of the given kind
func (g *Grid) Count(kind Kind) int {
	n := 0
	for i := range g.cells {
		if r := g.cells[i].Room; r != nil && r.Kind() == kind {
			n++
		}
	}
	return n
}

// Occupied returns the number of cells holding any template
func (g *Grid) Occupied() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Room != nil {
			n++
		}
	}
	return n
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.rows <= 0 || g.cols <= 0 {
		return "Grid has invalid dimensions"
	}
	if len(g.cells) != g.rows*g.cols {
		return "Grid storage does not match its dimensions"
	}
	return ""
}
