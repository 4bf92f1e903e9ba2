package generator

import (
	"dungeonforge/pkg/engine/catalog"
	"dungeonforge/pkg/engine/world"
)

// MazeGenerator fills every cell with a template that agrees with its
// neighbours
type MazeGenerator struct{}

// Name returns the name of this generator
func (g *MazeGenerator) Name() string {
	return "Maze Fill"
}

// Generate fills the grid row by row and then applies opts.Unconnected to
// the regions left cut off from each other
func (g *MazeGenerator) Generate(cat *catalog.Catalog, opts Options) (*world.Grid, error) {
	a, err := newRun(cat, opts)
	if err != nil {
		return nil, err
	}

	a.Fill()

	switch opts.Unconnected {
	case ConnectAll:
		a.ConnectAllRegions()
	case PruneSmall:
		a.RemoveSmallRegions()
	}
	return a.Grid, nil
}
