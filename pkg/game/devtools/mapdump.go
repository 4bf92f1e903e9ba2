// Package devtools provides developer tools for inspecting generated grids.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/assemble"
	"dungeonforge/pkg/game/renderer"
)

// MapOptions controls WriteMap
type MapOptions struct {
	Color bool
}

// Metadata describes how a dumped grid was produced
type Metadata struct {
	Generator string
	Seed      int64
	SubsetID  string
}

// WriteMap writes one line of glyphs per grid row
func WriteMap(w io.Writer, grid *world.Grid, opts MapOptions) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			bw.WriteString(renderer.RenderCell(grid.GetCell(row, col), opts.Color))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Unresolved returns the number of empty cells that are not permanent
func Unresolved(grid *world.Grid) int {
	n := 0
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.IsEmpty() && !cell.Permanent {
			n++
		}
	})
	return n
}

// Dump writes a full debug dump: metadata, legend, map, path-sets with
// reachability, room-sets and the unresolved cell count. Format is
// human-readable (sections, key: value).
func Dump(w io.Writer, grid *world.Grid, meta Metadata) error {
	bw := bufio.NewWriter(w)

	// --- Metadata ---
	fmt.Fprintln(bw, "=== MAP DUMP ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "generator: %s\n", meta.Generator)
	fmt.Fprintf(bw, "seed: %d\n", meta.Seed)
	fmt.Fprintf(bw, "subset_id: %q\n", meta.SubsetID)
	fmt.Fprintf(bw, "grid_rows: %d\n", grid.Rows())
	fmt.Fprintf(bw, "grid_cols: %d\n", grid.Cols())
	fmt.Fprintln(bw, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)")
	fmt.Fprintf(bw, "rooms: %d\n", len(assemble.CellsByKind(grid, world.Room)))
	fmt.Fprintf(bw, "passages: %d\n", len(assemble.CellsByKind(grid, world.Passage)))
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend ---")
	fmt.Fprintf(bw, "heavy lines (╋ ┃ ━ ■) = room  light lines (┼ │ ─) = passage  %s = permanent  %s = empty\n", renderer.IconPermanent, renderer.IconEmpty)
	fmt.Fprintln(bw, "line ends point at the sides a tile is open on")
	fmt.Fprintln(bw, "")

	// --- Map ---
	fmt.Fprintln(bw, "--- Map ---")
	if err := WriteMap(bw, grid, MapOptions{}); err != nil {
		return err
	}
	fmt.Fprintln(bw, "")

	// --- Regions ---
	fmt.Fprintln(bw, "--- Regions ---")
	table := assemble.PathSets(grid)
	regions := table.Regions()
	fmt.Fprintf(bw, "count: %d\n", len(regions))
	for _, r := range regions {
		nRooms, nPassages := 0, 0
		for _, loc := range r.Cells {
			if grid.At(loc).IsPassage() {
				nPassages++
			} else {
				nRooms++
			}
		}
		fmt.Fprintf(bw, "  label: %d size: %d rooms: %d passages: %d doors: %d foreign_contacts: %d first_cell: %v\n",
			r.Label, r.Size(), nRooms, nPassages,
			len(assemble.OpenedSides(grid, r.Cells)),
			len(assemble.ForeignNeighbors(grid, table, r.Label)),
			r.Cells[0])
	}
	if len(regions) > 0 {
		start := regions[0].Cells[0]
		reach := assemble.ReachableFrom(grid, start)
		fmt.Fprintf(bw, "reachable_from %v: %d of %d\n", start, reach.Size(), grid.Occupied())
	}
	fmt.Fprintln(bw, "")

	// --- Room sets ---
	fmt.Fprintln(bw, "--- Room Sets ---")
	roomSets := assemble.RoomSets(grid)
	fmt.Fprintf(bw, "count: %d\n", roomSets.Count())
	for _, r := range roomSets.Regions() {
		fmt.Fprintf(bw, "  label: %d size: %d doors: %d open_doors: %d first_cell: %v\n",
			r.Label, r.Size(),
			len(assemble.RoomSetDoors(grid, roomSets, r.Label, true)),
			len(assemble.RoomSetDoors(grid, roomSets, r.Label, false)),
			r.Cells[0])
	}
	fmt.Fprintln(bw, "")

	// --- Unresolved ---
	fmt.Fprintln(bw, "--- Unresolved ---")
	fmt.Fprintf(bw, "empty_cells: %d\n", Unresolved(grid))
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "=== END MAP DUMP ===")
	return bw.Flush()
}

// DumpToFile writes Dump to path and returns its absolute path
func DumpToFile(path string, grid *world.Grid, meta Metadata) (string, error) {
	if grid == nil {
		return "", fmt.Errorf("no grid")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := Dump(f, grid, meta); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
