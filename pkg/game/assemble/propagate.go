package assemble

import "dungeonforge/pkg/engine/world"

// optionalFilter places no requirement on anything except the subset
func optionalFilter(subsetID string) world.Filter {
	var f world.Filter
	f.SetAll(world.Optional, "")
	f.SubsetID = subsetID
	return f
}

// ComputeRequirement derives the filter a template at (row, col) must
// satisfy from the four neighbouring cells. Off-grid neighbours contribute
// base (a wall, normally) unless opts.IgnoreBoundary is set, empty
// neighbours contribute nothing, and occupied neighbours contribute their
// own openings mirrored toward this cell.
func ComputeRequirement(grid *world.Grid, row, col int, base world.Filter, opts Options) world.Filter {
	loc := world.Loc(row, col)

	var neighbors [4]*world.Filter
	for _, dir := range world.AllDirections() {
		var f world.Filter
		n := grid.Neighbor(loc, dir)
		switch {
		case n == nil:
			f = base
			if opts.IgnoreBoundary {
				f = optionalFilter(opts.SubsetID)
			}
		case n.IsEmpty():
			f = optionalFilter(opts.SubsetID)
		default:
			f = n.Room.Requirement()
		}
		neighbors[dir] = &f
	}

	var out world.Filter
	out.FillFromNeighbors(neighbors[world.North], neighbors[world.South], neighbors[world.West], neighbors[world.East], opts.SubsetID)
	if !opts.AllowRooms {
		out.Room = world.Off
	}
	if !opts.AllowPassages {
		out.Passage = world.Off
	}
	return out
}

// Requirement computes the constraint for (row, col) under the run's options
func (a *Assembler) Requirement(row, col int) world.Filter {
	return a.requirement(row, col, a.Options)
}

func (a *Assembler) requirement(row, col int, opts Options) world.Filter {
	return ComputeRequirement(a.Grid, row, col, world.EmptyFilter(), opts)
}
