package generator

import (
	"dungeonforge/pkg/engine/catalog"
	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/assemble"
)

// ScatterGenerator drops a few seed templates at random and joins them
// with passages
type ScatterGenerator struct{}

// Name returns the name of this generator
func (g *ScatterGenerator) Name() string {
	return "Scattered Rooms"
}

// Generate seeds RoomsPercentage of the grid and connects the result into
// a single region
func (g *ScatterGenerator) Generate(cat *catalog.Catalog, opts Options) (*world.Grid, error) {
	a, err := newRun(cat, opts)
	if err != nil {
		return nil, err
	}

	// Seeds are rooms when rooms are wanted, otherwise passages.
	carve := a.Options
	a.Options.AllowRooms = opts.IncludeRooms
	a.Options.AllowPassages = !opts.IncludeRooms
	a.PlotRandomRooms(assemble.RandomRoomsCount(opts.Rows, opts.Cols, opts.RoomsPercentage))
	a.Options = carve

	a.ConnectAllRegions()
	return a.Grid, nil
}
