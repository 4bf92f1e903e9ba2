package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"dungeonforge/pkg/engine/catalog"
	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/assemble"
	"dungeonforge/pkg/game/pattern"
)

var (
	// ErrUnknownGenerator is returned by Lookup for an unregistered name
	ErrUnknownGenerator = errors.New("generator: unknown generator")
	// ErrInvalidSize is returned when the requested grid has no cells
	ErrInvalidSize = errors.New("generator: grid dimensions must be positive")
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(cat *catalog.Catalog, opts Options) (*world.Grid, error)
	Name() string
}

// Available generators
var (
	Scatter = &ScatterGenerator{}
	Maze    = &MazeGenerator{}
	BSP     = &BSPGenerator{}
	Cavern  = &CavernGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = Scatter

var registry = map[string]GridGenerator{
	"scatter": Scatter,
	"maze":    Maze,
	"bsp":     BSP,
	"cavern":  Cavern,
}

// Lookup returns the generator registered under name, case-insensitively
func Lookup(name string) (GridGenerator, error) {
	g, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
	return g, nil
}

// Names returns the registered generator names, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newRun sets up the grid, random source and assembler for one Generate call
func newRun(cat *catalog.Catalog, opts Options) (*assemble.Assembler, error) {
	if opts.Rows <= 0 || opts.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Rows, opts.Cols)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	a, err := assemble.New(world.NewGrid(opts.Rows, opts.Cols), cat, rng, opts.assembleOptions())
	if err != nil {
		return nil, err
	}
	a.SetLogger(opts.Logger)
	if opts.Pattern.Enabled {
		a.Mask = pattern.NewNoiseMask(opts.Rows, opts.Cols, opts.Seed, opts.Pattern.Options)
	}
	return a, nil
}

// roomFilter asks for a room of the given subset that is open exactly on
// the sides where open reports true
func roomFilter(subsetID string, open func(world.Direction) bool) world.Filter {
	f := world.EmptyFilter()
	f.SubsetID = subsetID
	f.Room = world.On
	for _, dir := range world.AllDirections() {
		if open(dir) {
			f.SetDirection(dir, world.On)
		}
	}
	return f
}
