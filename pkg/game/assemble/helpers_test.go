package assemble

import (
	"math/rand"
	"testing"

	"dungeonforge/pkg/engine/catalog"
	"dungeonforge/pkg/engine/world"
)

// newRun creates an assembler over an empty grid with the standard catalog.
func newRun(t *testing.T, rows, cols int, seed int64) *Assembler {
	t.Helper()
	a, err := New(world.NewGrid(rows, cols), catalog.Standard(""), rand.New(rand.NewSource(seed)), DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func room(open ...world.Direction) world.Template {
	return world.NewDirectionalRoom(catalog.TemplateID(world.Room, open...), world.Room, "", open...)
}

func passage(open ...world.Direction) world.Template {
	return world.NewDirectionalRoom(catalog.TemplateID(world.Passage, open...), world.Passage, "", open...)
}

var allOpen = []world.Direction{world.North, world.East, world.South, world.West}

// snapshot records the template id of every cell.
func snapshot(g *world.Grid) []string {
	var ids []string
	g.ForEachCell(func(row, col int, c *world.Cell) {
		if c.IsEmpty() {
			ids = append(ids, "")
			return
		}
		ids = append(ids, c.Room.ID())
	})
	return ids
}

func sameSnapshot(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// checkNoDanglingPassages fails if a passage opens onto anything that does not open back.
func checkNoDanglingPassages(t *testing.T, g *world.Grid) {
	t.Helper()
	g.ForEachCell(func(row, col int, c *world.Cell) {
		if !c.IsPassage() {
			return
		}
		for _, dir := range world.AllDirections() {
			if c.IsOpen(dir) && !g.IsTilesConnected(row, col, dir) {
				t.Errorf("passage at %d,%d opens %v onto nothing", row, col, dir)
			}
		}
	})
}

// allowOnly is an eligibility mask admitting a fixed set of columns.
type allowOnly map[int]bool

func (m allowOnly) Eligible(row, col int) bool { return m[col] }
