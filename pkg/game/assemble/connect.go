package assemble

import (
	"dungeonforge/pkg/engine/pathfind"
	"dungeonforge/pkg/engine/world"
)

// endpoint is a cell a connection may start or end on. Ref is the region
// cell that has to open toward it; passage cells stand for themselves and
// have no ref.
type endpoint struct {
	Cell   world.Location
	Ref    world.Location
	HasRef bool
}

// carveOptions are the run options with both kinds allowed, for steps that
// set the kind requirement themselves
func (a *Assembler) carveOptions() Options {
	opts := a.Options
	opts.AllowRooms = true
	opts.AllowPassages = true
	return opts
}

// setKind forces the filter to accept exactly kind
func setKind(f *world.Filter, kind world.Kind) {
	if kind == world.Room {
		f.Room, f.Passage = world.On, world.Off
	} else {
		f.Room, f.Passage = world.Off, world.On
	}
}

// MakeOneSideConnection re-plots the cell at (row, col) so that it opens
// toward dir, keeping its kind when keepKind is set. Permanent and empty
// cells are refused.
func (a *Assembler) MakeOneSideConnection(row, col int, dir world.Direction, keepKind bool) bool {
	c := a.Grid.GetCell(row, col)
	if c == nil || c.Permanent || c.IsEmpty() {
		return false
	}
	f := a.requirement(row, col, a.carveOptions())
	if keepKind {
		setKind(&f, c.Room.Kind())
	}
	f.SetConnectionOn(dir, false)
	return a.place(row, col, f)
}

// MakeConnection opens the occupied cells on both sides of the face
// (row, col, dir) toward each other
func (a *Assembler) MakeConnection(row, col int, dir world.Direction) bool {
	c := a.Grid.GetCell(row, col)
	if c == nil {
		return false
	}
	n := a.Grid.Neighbor(c.Location(), dir)
	if n == nil || c.Permanent || n.Permanent || c.IsEmpty() || n.IsEmpty() {
		return false
	}
	ok := a.MakeOneSideConnection(row, col, dir, true)
	return a.MakeOneSideConnection(n.Row, n.Col, dir.Opposite(), true) && ok
}

// passageFilter is the requirement for a carved passage at loc: only
// neighbours already open onto it stay open, every other side is closed.
func (a *Assembler) passageFilter(loc world.Location) world.Filter {
	f := a.requirement(loc.Row, loc.Col, a.carveOptions())
	f.SetAllWhere(world.Off, world.Optional, "")
	f.SubsetID = a.Options.SubsetID
	setKind(&f, world.Passage)
	return f
}

// StampPassages places a passage on every cell of route. Each passage opens
// toward its predecessor and successor on the route and toward neighbours
// already open onto it; every other side is closed.
func (a *Assembler) StampPassages(route []world.Location) bool {
	ok := true
	for i, loc := range route {
		f := a.passageFilter(loc)
		if i > 0 {
			if dir, adj := loc.DirectionTo(route[i-1]); adj {
				f.SetConnectionOn(dir, false)
			}
		}
		if i+1 < len(route) {
			if dir, adj := loc.DirectionTo(route[i+1]); adj {
				f.SetConnectionOn(dir, false)
			}
		}
		if !a.place(loc.Row, loc.Col, f) {
			ok = false
		}
	}
	return ok
}

// PlotPath carves a passage joining start and end. Adjacent cells are
// joined directly and a single cell becomes one passage; otherwise the
// pathfinder picks the route, stopping short if end cannot be reached.
func (a *Assembler) PlotPath(start, end world.Location) bool {
	return a.plotPath(start, endpoint{Cell: end})
}

// plotPath is PlotPath toward an endpoint. When the route stops short, the
// endpoint's ref (or the cell itself when it has none) is opened toward the
// last route cell if the two touch; an empty one receives a passage.
func (a *Assembler) plotPath(start world.Location, end endpoint) bool {
	if a.Grid.At(start) == nil {
		return false
	}

	switch start.DistanceSquared(end.Cell) {
	case 0:
		return a.StampPassages([]world.Location{start})
	case 1:
		return a.joinAdjacent(start, end.Cell)
	}

	route := pathfind.Route(a.Grid, start, end.Cell, true)
	if len(route) == 0 {
		return false
	}
	if !pathfind.Reached(route, end.Cell) {
		last := route[len(route)-1]
		a.openToward(end, last)
		a.logf("path: %v unreachable from %v, stopped at %v", end.Cell, start, last)
	}
	return a.StampPassages(route)
}

// openToward turns the endpoint's target cell toward loc if they touch
func (a *Assembler) openToward(end endpoint, loc world.Location) {
	target := end.Cell
	if end.HasRef {
		target = end.Ref
	}
	dir, adj := target.DirectionTo(loc)
	c := a.Grid.At(target)
	if !adj || c == nil || c.Permanent {
		return
	}
	if c.IsEmpty() {
		f := a.passageFilter(target)
		f.SetConnectionOn(dir, false)
		a.place(target.Row, target.Col, f)
		return
	}
	a.MakeOneSideConnection(target.Row, target.Col, dir, true)
}

// joinAdjacent connects two neighbouring cells. Occupied cells are opened
// toward each other; an empty one receives a passage.
func (a *Assembler) joinAdjacent(start, end world.Location) bool {
	dir, _ := start.DirectionTo(end)
	sc, ec := a.Grid.At(start), a.Grid.At(end)
	if ec == nil {
		return false
	}
	if !sc.IsEmpty() && !ec.IsEmpty() {
		return a.MakeConnection(start.Row, start.Col, dir)
	}

	ok := true
	for _, side := range []Side{{From: start, Dir: dir}, {From: end, Dir: dir.Opposite()}} {
		if a.Grid.At(side.From).IsEmpty() {
			f := a.passageFilter(side.From)
			f.SetConnectionOn(side.Dir, false)
			ok = a.place(side.From.Row, side.From.Col, f) && ok
			continue
		}
		ok = a.MakeOneSideConnection(side.From.Row, side.From.Col, side.Dir, true) && ok
	}
	return ok
}

// boundary returns the cells a connection to region may end on. Open faces
// onto empty cells or foreign passages come first; a region with none falls
// back to every usable neighbour of its rooms, permanent rooms only on
// their open sides, plus its passages themselves.
func (a *Assembler) boundary(table *Table, region Region) []endpoint {
	usable := func(n *world.Cell) bool {
		if n == nil || n.Permanent {
			return false
		}
		return n.IsEmpty() || (n.IsPassage() && table.LabelAt(n.Location()) != region.Label)
	}

	var out []endpoint
	for _, side := range openedSidesWhere(a.Grid, region.Cells, usable) {
		out = append(out, endpoint{Cell: side.To(), Ref: side.From, HasRef: true})
	}
	if len(out) > 0 {
		return out
	}

	for _, loc := range region.Cells {
		c := a.Grid.At(loc)
		if !c.IsRoom() {
			out = append(out, endpoint{Cell: loc})
			continue
		}
		for _, dir := range world.AllDirections() {
			if c.Permanent && !c.IsOpen(dir) {
				continue
			}
			if n := a.Grid.Neighbor(loc, dir); usable(n) {
				out = append(out, endpoint{Cell: n.Location(), Ref: loc, HasRef: true})
			}
		}
	}
	return out
}

// closestPair returns a pair at the minimum distance, drawn uniformly
// among ties. Pairs are enumerated in the order of as, then bs.
func (a *Assembler) closestPair(as, bs []endpoint) (endpoint, endpoint, bool) {
	best := -1
	var pairs [][2]endpoint
	for _, p := range as {
		for _, q := range bs {
			d := p.Cell.DistanceSquared(q.Cell)
			if best < 0 || d < best {
				best = d
				pairs = pairs[:0]
			}
			if d == best {
				pairs = append(pairs, [2]endpoint{p, q})
			}
		}
	}
	if len(pairs) == 0 {
		return endpoint{}, endpoint{}, false
	}
	pick := pairs[a.rng.Intn(len(pairs))]
	return pick[0], pick[1], true
}

// openRef turns the endpoint's region cell toward the endpoint
func (a *Assembler) openRef(e endpoint) {
	if !e.HasRef {
		return
	}
	if dir, adj := e.Ref.DirectionTo(e.Cell); adj {
		a.MakeOneSideConnection(e.Ref.Row, e.Ref.Col, dir, true)
	}
}

// ConnectRegions carves a passage between the closest boundary cells of
// two regions of table. It returns false when no route exists.
func (a *Assembler) ConnectRegions(table *Table, from, to Region) bool {
	p, q, ok := a.closestPair(a.boundary(table, from), a.boundary(table, to))
	if !ok {
		a.logf("connect: regions %d and %d have no boundary", from.Label, to.Label)
		return false
	}
	if !pathfind.HasPath(a.Grid, p.Cell, q.Cell, true) {
		a.logf("connect: no route between %v and %v", p.Cell, q.Cell)
		return false
	}

	a.openRef(p)
	a.openRef(q)
	a.logf("connect: region %d at %v to region %d at %v", from.Label, p.Cell, to.Label, q.Cell)
	return a.plotPath(p.Cell, q)
}

// ConnectAllRegions joins each consecutive pair of path-sets, in label
// order, and then removes whatever is still cut off from the largest
// region. A grid with at most one region is left untouched. It returns the
// number of pairs connected.
func (a *Assembler) ConnectAllRegions() int {
	table := PathSets(a.Grid)
	regions := table.Regions()
	if len(regions) <= 1 {
		return 0
	}

	a.logf("connect: %d regions", len(regions))
	connected := 0
	for i := 0; i+1 < len(regions); i++ {
		if a.ConnectRegions(table, regions[i], regions[i+1]) {
			connected++
		}
	}

	removed := a.RemoveSmallRegions()
	a.logf("connect: joined %d pairs, pruned %d cells", connected, removed)
	return connected
}

// RemoveRegion empties every non-permanent cell of label. It returns the
// number of cells cleared.
func (a *Assembler) RemoveRegion(table *Table, label int) int {
	return a.clearCells(table.Cells(label))
}

// RemoveSmallRegions keeps the path-set with the most cells, the earliest
// on ties, and clears every other one. It returns the number of cells cleared.
func (a *Assembler) RemoveSmallRegions() int {
	table := PathSets(a.Grid)
	regions := table.Regions()
	if len(regions) <= 1 {
		return 0
	}

	keep := 0
	for i, r := range regions {
		if r.Size() > regions[keep].Size() {
			keep = i
		}
	}

	removed := 0
	for i, r := range regions {
		if i != keep {
			removed += a.RemoveRegion(table, r.Label)
		}
	}
	return removed
}

func (a *Assembler) clearCells(cells []world.Location) int {
	n := 0
	for _, loc := range cells {
		if a.Grid.ClearCell(loc.Row, loc.Col) {
			n++
		}
	}
	return n
}
