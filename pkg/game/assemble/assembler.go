// Package assemble fills a tile grid from a template catalog. It derives
// each cell's constraints from its neighbours, labels connected regions and
// carves passages until every region is joined.
package assemble

import (
	"fmt"
	"io"
	"log"
	"math/rand"

	"dungeonforge/pkg/engine/catalog"
	"dungeonforge/pkg/engine/world"
)

// Options are the placement parameters shared by every step of a run
type Options struct {
	// IgnoreBoundary treats off-grid neighbours as undecided instead of walls.
	IgnoreBoundary bool
	// SubsetID restricts selection to one catalog subset. Empty means any.
	SubsetID      string
	AllowRooms    bool
	AllowPassages bool
}

// DefaultOptions allows both kinds, any subset, and walls at the boundary
func DefaultOptions() Options {
	return Options{AllowRooms: true, AllowPassages: true}
}

// Eligibility gates random room placement. Implementations must be safe to
// call for every in-bounds cell.
type Eligibility interface {
	Eligible(row, col int) bool
}

// Assembler is one generation run. It owns the grid and the run's random
// source and must not be used from more than one goroutine.
type Assembler struct {
	Grid    *world.Grid
	Catalog *catalog.Catalog
	Options Options
	// Mask, when set, limits where seed rooms may be placed.
	Mask Eligibility

	rng    *rand.Rand
	logger *log.Logger
}

// New creates a run over grid. Every random draw of the run comes from rng.
func New(grid *world.Grid, cat *catalog.Catalog, rng *rand.Rand, opts Options) (*Assembler, error) {
	if grid == nil {
		return nil, fmt.Errorf("assemble: nil grid")
	}
	if cat == nil {
		return nil, fmt.Errorf("assemble: %w", catalog.ErrEmptyCatalog)
	}
	if _, err := cat.EmptyFilter(); err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("assemble: nil random source")
	}
	return &Assembler{
		Grid:    grid,
		Catalog: cat,
		Options: opts,
		rng:     rng,
		logger:  log.New(io.Discard, "", 0),
	}, nil
}

// SetLogger directs the run's progress messages to l. A nil logger discards them.
func (a *Assembler) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	a.logger = l
}

// Logger returns the run's logger
func (a *Assembler) Logger() *log.Logger {
	return a.logger
}

// Rand returns the run's random source
func (a *Assembler) Rand() *rand.Rand {
	return a.rng
}

func (a *Assembler) logf(format string, args ...any) {
	a.logger.Printf(format, args...)
}
