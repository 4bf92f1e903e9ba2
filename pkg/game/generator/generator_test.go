// Package generator tests grid generation: registry lookup, determinism per
// seed and connectivity of the finished grids.
package generator

import (
	"errors"
	"testing"

	"dungeonforge/pkg/engine/catalog"
	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/assemble"
	"dungeonforge/pkg/game/pattern"
)

func testOptions(seed int64) Options {
	opts := DefaultOptions()
	opts.Rows = 20
	opts.Cols = 30
	opts.Seed = seed
	return opts
}

// ids records the template id of every cell, "" for empty ones.
func ids(g *world.Grid) []string {
	var out []string
	g.ForEachCell(func(row, col int, c *world.Cell) {
		if c.IsEmpty() {
			out = append(out, "")
			return
		}
		out = append(out, c.Room.ID())
	})
	return out
}

func mustGenerate(t *testing.T, g GridGenerator, opts Options) *world.Grid {
	t.Helper()
	grid, err := g.Generate(catalog.Standard(""), opts)
	if err != nil {
		t.Fatalf("%s: Generate: %v", g.Name(), err)
	}
	if msg := grid.Validate(); msg != "" {
		t.Fatalf("%s: invalid grid: %s", g.Name(), msg)
	}
	return grid
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		g, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if g.Name() == "" {
			t.Errorf("generator %q has no display name", name)
		}
	}
	if g, err := Lookup(" BSP "); err != nil || g != BSP {
		t.Errorf("Lookup should trim and ignore case, got %v, %v", g, err)
	}
	if _, err := Lookup("nope"); !errors.Is(err, ErrUnknownGenerator) {
		t.Errorf("Lookup(nope) error = %v, want ErrUnknownGenerator", err)
	}
	if len(Names()) != 4 {
		t.Errorf("Names() = %v, want 4 generators", Names())
	}
}

func TestGenerate_InvalidSize(t *testing.T) {
	opts := testOptions(1)
	opts.Rows = 0
	for _, name := range Names() {
		g, _ := Lookup(name)
		if _, err := g.Generate(catalog.Standard(""), opts); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("%s: error = %v, want ErrInvalidSize", name, err)
		}
	}
}

func TestGenerate_EmptyCatalog(t *testing.T) {
	if _, err := Scatter.Generate(catalog.New(), testOptions(1)); !errors.Is(err, catalog.ErrEmptyCatalog) {
		t.Errorf("error = %v, want ErrEmptyCatalog", err)
	}
}

func TestGenerate_DeterministicPerSeed(t *testing.T) {
	for _, name := range Names() {
		g, _ := Lookup(name)
		first := ids(mustGenerate(t, g, testOptions(7)))
		second := ids(mustGenerate(t, g, testOptions(7)))
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("%s: cell %d differs between runs with the same seed: %q vs %q", name, i, first[i], second[i])
				break
			}
		}
	}
}

func TestGenerate_ConnectedGenerators(t *testing.T) {
	for _, g := range []GridGenerator{Scatter, BSP, Cavern} {
		for seed := int64(1); seed <= 5; seed++ {
			grid := mustGenerate(t, g, testOptions(seed))
			if grid.Occupied() == 0 {
				t.Errorf("%s seed %d: grid is empty", g.Name(), seed)
			}
			if n := assemble.PathSets(grid).Count(); n > 1 {
				t.Errorf("%s seed %d: %d path-sets, want 1", g.Name(), seed, n)
			}
		}
	}
}

func TestScatter_WithPattern(t *testing.T) {
	opts := testOptions(3)
	opts.Pattern.Enabled = true
	grid := mustGenerate(t, Scatter, opts)
	if n := assemble.PathSets(grid).Count(); n > 1 {
		t.Errorf("%d path-sets, want 1", n)
	}
}

func TestScatter_PassageSeeds(t *testing.T) {
	opts := testOptions(2)
	opts.IncludeRooms = false
	grid := mustGenerate(t, Scatter, opts)
	if n := grid.Count(world.Room); n != 0 {
		t.Errorf("%d rooms placed with rooms excluded", n)
	}
	if grid.Count(world.Passage) == 0 {
		t.Error("no passages placed")
	}
}

func TestBSP_HasRooms(t *testing.T) {
	grid := mustGenerate(t, BSP, testOptions(1))
	if grid.Count(world.Room) < minRoomSize*minRoomSize {
		t.Errorf("only %d room cells", grid.Count(world.Room))
	}
}

func TestBSP_SmallGridStaysEmpty(t *testing.T) {
	opts := testOptions(1)
	opts.Rows, opts.Cols = 4, 4
	grid := mustGenerate(t, BSP, opts)
	if grid.Occupied() != 0 {
		t.Errorf("4x4 grid got %d occupied cells, want 0", grid.Occupied())
	}
}

func TestCavern_BorderIsPermanent(t *testing.T) {
	grid := mustGenerate(t, Cavern, testOptions(4))
	grid.ForEachCell(func(row, col int, c *world.Cell) {
		border := row == 0 || col == 0 || row == grid.Rows()-1 || col == grid.Cols()-1
		if border && !c.Permanent {
			t.Errorf("border cell %d,%d is not permanent", row, col)
		}
		if border && !c.IsEmpty() {
			t.Errorf("border cell %d,%d holds %s", row, col, c.Room.ID())
		}
	})
}

func TestMaze_FillsEveryCell(t *testing.T) {
	opts := testOptions(5)
	opts.Unconnected = LeaveAlone
	grid := mustGenerate(t, Maze, opts)
	if got, want := grid.Occupied(), opts.Rows*opts.Cols; got != want {
		t.Errorf("Occupied() = %d, want %d", got, want)
	}
}

func TestMaze_UnconnectedActions(t *testing.T) {
	for _, action := range []UnconnectedAction{ConnectAll, PruneSmall} {
		opts := testOptions(6)
		opts.Unconnected = action
		grid := mustGenerate(t, Maze, opts)
		if n := assemble.PathSets(grid).Count(); n > 1 {
			t.Errorf("%s: %d path-sets, want at most 1", action, n)
		}
	}
}

func TestMaze_PatternMask(t *testing.T) {
	opts := testOptions(7)
	opts.Pattern.Enabled = true
	opts.Unconnected = LeaveAlone
	grid := mustGenerate(t, Maze, opts)

	mask := pattern.NewNoiseMask(opts.Rows, opts.Cols, opts.Seed, opts.Pattern.Options)
	grid.ForEachCell(func(row, col int, c *world.Cell) {
		eligible := mask.Eligible(row, col)
		if !eligible && !c.IsEmpty() {
			t.Errorf("cell %d,%d filled outside the mask", row, col)
		}
		if eligible && c.IsEmpty() {
			t.Errorf("eligible cell %d,%d left empty", row, col)
		}
	})
}

func TestBSP_IgnoresPatternMask(t *testing.T) {
	plain := ids(mustGenerate(t, BSP, testOptions(3)))

	opts := testOptions(3)
	opts.Pattern.Enabled = true
	masked := ids(mustGenerate(t, BSP, opts))

	for i := range plain {
		if plain[i] != masked[i] {
			t.Fatalf("cell %d differs with the mask enabled: %q vs %q", i, plain[i], masked[i])
		}
	}
}
