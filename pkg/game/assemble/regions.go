package assemble

import "dungeonforge/pkg/engine/world"

// Table holds one label per cell. Label 0 marks a cell outside every region.
type Table struct {
	rows, cols int
	labels     []int
}

// Region is one labelled set of cells in row-major order
type Region struct {
	Label int
	Cells []world.Location
}

// Size returns the number of cells in the region
func (r Region) Size() int {
	return len(r.Cells)
}

func newTable(rows, cols int) *Table {
	return &Table{rows: rows, cols: cols, labels: make([]int, rows*cols)}
}

// Label returns the label at (row, col), or 0 when out of bounds
func (t *Table) Label(row, col int) int {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return 0
	}
	return t.labels[row*t.cols+col]
}

// LabelAt returns the label at loc
func (t *Table) LabelAt(loc world.Location) int {
	return t.Label(loc.Row, loc.Col)
}

func (t *Table) set(row, col, label int) {
	t.labels[row*t.cols+col] = label
}

// relabel rewrites every from label to to across rows 0..lastRow
func (t *Table) relabel(from, to, lastRow int) {
	end := (lastRow + 1) * t.cols
	if end > len(t.labels) {
		end = len(t.labels)
	}
	for i := 0; i < end; i++ {
		if t.labels[i] == from {
			t.labels[i] = to
		}
	}
}

// Labels returns the distinct non-zero labels in row-major order of first appearance
func (t *Table) Labels() []int {
	seen := map[int]bool{}
	var out []int
	for _, l := range t.labels {
		if l != 0 && !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

// Count returns the number of distinct regions
func (t *Table) Count() int {
	return len(t.Labels())
}

// Cells returns the cells carrying label, row-major
func (t *Table) Cells(label int) []world.Location {
	if label == 0 {
		return nil
	}
	var out []world.Location
	for i, l := range t.labels {
		if l == label {
			out = append(out, world.Loc(i/t.cols, i%t.cols))
		}
	}
	return out
}

// Regions returns every region in Labels order
func (t *Table) Regions() []Region {
	index := map[int]int{}
	var out []Region
	for i, l := range t.labels {
		if l == 0 {
			continue
		}
		k, ok := index[l]
		if !ok {
			k = len(out)
			index[l] = k
			out = append(out, Region{Label: l})
		}
		out[k].Cells = append(out[k].Cells, world.Loc(i/t.cols, i%t.cols))
	}
	return out
}

// SamePartition reports whether both tables group cells identically,
// regardless of the numeric labels used.
func (t *Table) SamePartition(o *Table) bool {
	if t.rows != o.rows || t.cols != o.cols {
		return false
	}
	forward := map[int]int{}
	backward := map[int]int{}
	for i := range t.labels {
		a, b := t.labels[i], o.labels[i]
		if (a == 0) != (b == 0) {
			return false
		}
		if a == 0 {
			continue
		}
		if m, ok := forward[a]; ok && m != b {
			return false
		}
		if m, ok := backward[b]; ok && m != a {
			return false
		}
		forward[a] = b
		backward[b] = a
	}
	return true
}

// scan labels the grid in a single row-major pass. include selects the
// cells that take part; linked reports whether an included cell joins the
// already-scanned neighbour toward dir. When the north and west labels
// disagree the higher one is rewritten to the lower over the rows seen so far.
func scan(grid *world.Grid, include func(*world.Cell) bool, linked func(c, n *world.Cell, dir world.Direction) bool) *Table {
	t := newTable(grid.Rows(), grid.Cols())
	last := 0

	grid.ForEachCell(func(row, col int, c *world.Cell) {
		if !include(c) {
			return
		}
		if last == 0 {
			last = 1
			t.set(row, col, last)
			return
		}

		label := 0
		if n := grid.GetCell(row-1, col); n != nil && include(n) && linked(c, n, world.North) {
			label = t.Label(row-1, col)
		}
		if w := grid.GetCell(row, col-1); w != nil && include(w) && linked(c, w, world.West) {
			westLabel := t.Label(row, col-1)
			switch {
			case label == 0:
				label = westLabel
			case westLabel != label:
				lo, hi := min(label, westLabel), max(label, westLabel)
				t.relabel(hi, lo, row)
				label = lo
			}
		}
		if label == 0 {
			last++
			label = last
		}
		t.set(row, col, label)
	})
	return t
}

func occupied(c *world.Cell) bool { return !c.IsEmpty() }
func isRoom(c *world.Cell) bool   { return c.IsRoom() }

func openingsMatch(c, n *world.Cell, dir world.Direction) bool {
	return c.Room.Connects(dir, n.Room)
}

func adjacent(c, n *world.Cell, dir world.Direction) bool { return true }

// PathSets labels the regions of occupied cells joined through matching openings
func PathSets(grid *world.Grid) *Table {
	return scan(grid, occupied, openingsMatch)
}

// PathSetsByAdjacency labels the regions of occupied cells joined by adjacency alone
func PathSetsByAdjacency(grid *world.Grid) *Table {
	return scan(grid, occupied, adjacent)
}

// RoomSets labels the regions of Room-kind cells joined through matching openings
func RoomSets(grid *world.Grid) *Table {
	return scan(grid, isRoom, openingsMatch)
}

// RoomIndexes gives every Room-kind cell its own label, row-major from 1
func RoomIndexes(grid *world.Grid) *Table {
	t := newTable(grid.Rows(), grid.Cols())
	next := 0
	grid.ForEachCell(func(row, col int, c *world.Cell) {
		if c.IsRoom() {
			next++
			t.set(row, col, next)
		}
	})
	return t
}
