// Package pathfind implements a 4-directional A* search over the tile grid
// that falls back to the nearest explored cell when the goal is unreachable.
package pathfind

import (
	"math"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"dungeonforge/pkg/engine/world"
)

// node is a search node, one per discovered location
type node struct {
	loc    world.Location
	parent *node
	g, h   int
}

func (n *node) f() int {
	return n.g + n.h
}

// entry is a heap item. seq orders entries with equal f by discovery, so
// the first-found node wins ties. f is captured at push time so entries made
// stale by a cheaper path can be recognised and skipped.
type entry struct {
	n   *node
	f   int
	seq int
}

func entryLess(a, b entry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// Traversable reports whether the search may step onto loc. Rooms and
// permanent cells never are; passages only when ignorePassages is set.
func Traversable(grid *world.Grid, loc world.Location, ignorePassages bool) bool {
	c := grid.At(loc)
	if c == nil || c.Permanent {
		return false
	}
	if c.IsEmpty() {
		return true
	}
	return ignorePassages && c.IsPassage()
}

// heuristic is the Euclidean distance rounded to the nearest integer
func heuristic(a, b world.Location) int {
	return int(math.Round(a.Distance(b)))
}

// Route searches from start toward goal and returns the path start-first.
// When the goal cannot be reached the route ends at the explored cell
// nearest to it; use Reached to tell the cases apart. The result is nil
// only when start itself is not traversable.
func Route(grid *world.Grid, start, goal world.Location, ignorePassages bool) []world.Location {
	if !Traversable(grid, start, ignorePassages) {
		return nil
	}

	open := heap.New(entryLess)
	nodes := map[world.Location]*node{}
	closed := mapset.New[world.Location]()
	var closedOrder []*node
	seq := 0

	first := &node{loc: start, g: 1, h: heuristic(start, goal)}
	nodes[start] = first
	open.Push(entry{n: first, f: first.f(), seq: seq})

	var last *node
	for open.Size() > 0 {
		e, _ := open.Pop()
		current := e.n
		if closed.Has(current.loc) || e.f != current.f() {
			continue
		}
		closed.Put(current.loc)
		closedOrder = append(closedOrder, current)

		if current.loc == goal {
			last = current
			break
		}

		for _, dir := range world.AllDirections() {
			next := current.loc.Step(dir)
			if closed.Has(next) || !Traversable(grid, next, ignorePassages) {
				continue
			}

			g := current.g + 1
			n, seen := nodes[next]
			if seen && g >= n.g {
				continue
			}
			if !seen {
				n = &node{loc: next, h: heuristic(next, goal)}
				nodes[next] = n
			}
			n.g = g
			n.parent = current
			seq++
			open.Push(entry{n: n, f: n.f(), seq: seq})
		}
	}

	if last == nil {
		last = nearest(closedOrder, goal)
	}
	return chain(last)
}

// nearest returns the first closed node with the smallest distance to goal
func nearest(closed []*node, goal world.Location) *node {
	var best *node
	bestDist := 0
	for _, n := range closed {
		d := n.loc.DistanceSquared(goal)
		if best == nil || d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}

// chain walks parent links back from n and returns the path start-first
func chain(n *node) []world.Location {
	var path []world.Location
	for ; n != nil; n = n.parent {
		path = append(path, n.loc)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Reached reports whether route ends at goal
func Reached(route []world.Location, goal world.Location) bool {
	return len(route) > 0 && route[len(route)-1] == goal
}

// HasPath reports whether a traversable route joins start and goal
func HasPath(grid *world.Grid, start, goal world.Location, ignorePassages bool) bool {
	return Reached(Route(grid, start, goal, ignorePassages), goal)
}
