package generator

import (
	"dungeonforge/pkg/engine/catalog"
	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/cave"
)

// CavernGenerator turns a cellular-automaton cave into rooms. The cave's
// outer wall becomes permanent; its floor becomes rooms open toward
// neighbouring floor.
type CavernGenerator struct{}

// Name returns the name of this generator
func (g *CavernGenerator) Name() string {
	return "Cellular Caverns"
}

// Generate builds the cave layout, places the rooms and connects the
// separate caves with passages dug through the rock
func (g *CavernGenerator) Generate(cat *catalog.Catalog, opts Options) (*world.Grid, error) {
	a, err := newRun(cat, opts)
	if err != nil {
		return nil, err
	}
	a.Mask = nil

	layout := cave.Generate(opts.Rows, opts.Cols, a.Rand(), opts.Cave.InitialOpen, opts.Cave.Iterations)
	a.Logger().Printf("cavern: %d floor tiles", layout.FloorCount())

	a.Grid.ForEachCell(func(row, col int, c *world.Cell) {
		switch layout.At(row, col) {
		case cave.PermanentWall:
			c.Permanent = true
		case cave.Floor:
			loc := world.Loc(row, col)
			f := roomFilter(a.Options.SubsetID, func(dir world.Direction) bool {
				next := loc.Step(dir)
				return layout.IsFloor(next.Row, next.Col)
			})
			a.PlotRandomRoom(row, col, f, false)
		}
	})

	a.ConnectAllRegions()
	return a.Grid, nil
}
