// Package cave generates cellular-automaton cavern layouts: a walled
// rectangle with organically shaped floor areas.
package cave

import (
	"math/rand"
	"strings"
)

// Tile is the state of one layout cell
type Tile int

const (
	PermanentWall Tile = iota
	Wall
	Floor
)

// Layout is a rows x cols grid of tiles with a permanent border
type Layout struct {
	rows, cols int
	tiles      []Tile
}

// Rows returns the number of rows
func (l *Layout) Rows() int { return l.rows }

// Cols returns the number of columns
func (l *Layout) Cols() int { return l.cols }

// At returns the tile at (row, col); out-of-range cells read as PermanentWall
func (l *Layout) At(row, col int) Tile {
	if row < 0 || row >= l.rows || col < 0 || col >= l.cols {
		return PermanentWall
	}
	return l.tiles[row*l.cols+col]
}

func (l *Layout) set(row, col int, t Tile) {
	l.tiles[row*l.cols+col] = t
}

// IsFloor reports whether (row, col) is floor
func (l *Layout) IsFloor(row, col int) bool {
	return l.At(row, col) == Floor
}

// FloorCount returns the number of floor tiles
func (l *Layout) FloorCount() int {
	n := 0
	for _, t := range l.tiles {
		if t == Floor {
			n++
		}
	}
	return n
}

// Generate builds a cavern: walls everywhere, a permanent border, a random
// initialOpen share of the interior opened, then iterations of smoothing.
// Grids smaller than 3x3 have no interior and come back all border.
func Generate(rows, cols int, rng *rand.Rand, initialOpen float64, iterations int) *Layout {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	l := &Layout{rows: rows, cols: cols, tiles: make([]Tile, rows*cols)}
	for i := range l.tiles {
		l.tiles[i] = Wall
	}
	l.setBorder()

	interior := (rows - 2) * (cols - 2)
	if interior <= 0 {
		return l
	}
	open := int(float64(rows*cols) * initialOpen)
	if open > interior {
		open = interior
	}
	for open > 0 {
		row := 1 + rng.Intn(rows-2)
		col := 1 + rng.Intn(cols-2)
		if l.At(row, col) == Wall {
			l.set(row, col, Floor)
			open--
		}
	}

	for i := 0; i < iterations; i++ {
		l.smooth()
	}
	return l
}

func (l *Layout) setBorder() {
	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			if row == 0 || col == 0 || row == l.rows-1 || col == l.cols-1 {
				l.set(row, col, PermanentWall)
			}
		}
	}
}

// smooth applies one automaton step in place: crowded floor collapses to
// wall and sparse wall opens to floor
func (l *Layout) smooth() {
	for row := 1; row < l.rows-1; row++ {
		for col := 1; col < l.cols-1; col++ {
			walls := l.adjacentWalls(row, col)
			switch {
			case l.At(row, col) == Floor && walls > 5:
				l.set(row, col, Wall)
			case l.At(row, col) != Floor && walls < 4:
				l.set(row, col, Floor)
			}
		}
	}
}

// adjacentWalls counts the non-floor cells among the eight around (row, col)
func (l *Layout) adjacentWalls(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if l.At(row+dr, col+dc) != Floor {
				n++
			}
		}
	}
	return n
}

func (l *Layout) String() string {
	var b strings.Builder
	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			switch l.At(row, col) {
			case Floor:
				b.WriteByte('.')
			case Wall:
				b.WriteByte('#')
			default:
				b.WriteByte('X')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
