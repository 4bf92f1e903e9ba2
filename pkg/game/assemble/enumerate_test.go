package assemble

import (
	"testing"

	"dungeonforge/pkg/engine/world"
)

func TestOpenedSides(t *testing.T) {
	g := world.NewGrid(2, 2)
	g.Place(0, 0, room(world.East, world.South, world.North))
	g.Place(0, 1, room(world.West))

	sides := OpenedSides(g, []world.Location{world.Loc(0, 0)})
	if len(sides) != 1 {
		t.Fatalf("OpenedSides = %v, want only the south face", sides)
	}
	if sides[0].Dir != world.South || sides[0].To() != world.Loc(1, 0) {
		t.Errorf("side = %+v, want south onto 1,0", sides[0])
	}
}

func TestRoomSetDoors(t *testing.T) {
	g := uShape()
	// Open a door from the left arm onto the empty cell above the passage.
	g.Place(0, 0, room(world.South, world.East))
	rooms := RoomSets(g)
	left := rooms.Label(0, 0)

	all := RoomSetDoors(g, rooms, left, true)
	if len(all) != 2 {
		t.Fatalf("doors with connected = %v, want 2", all)
	}
	open := RoomSetDoors(g, rooms, left, false)
	if len(open) != 1 || open[0].To() != world.Loc(0, 1) {
		t.Errorf("unconnected doors = %v, want the door onto 0,1", open)
	}
}

func TestForeignNeighbors(t *testing.T) {
	g := world.NewGrid(1, 3)
	g.Place(0, 0, room(world.East))
	g.Place(0, 1, passage(world.West))
	g.Place(0, 2, room())

	table := PathSets(g)
	sides := ForeignNeighbors(g, table, table.Label(0, 0))
	if len(sides) != 1 || sides[0].From != world.Loc(0, 1) || sides[0].Dir != world.East {
		t.Errorf("ForeignNeighbors = %v, want passage facing east", sides)
	}
}

func TestCellsByKind(t *testing.T) {
	g := uShape()
	if got := len(CellsByKind(g, world.Room)); got != 4 {
		t.Errorf("rooms = %d, want 4", got)
	}
	if got := CellsByKind(g, world.Passage); len(got) != 1 || got[0] != world.Loc(1, 1) {
		t.Errorf("passages = %v, want [1,1]", got)
	}
}

func TestReachableFrom_EmptyStart(t *testing.T) {
	if got := ReachableFrom(world.NewGrid(2, 2), world.Loc(0, 0)).Size(); got != 0 {
		t.Errorf("reachable from an empty cell = %d, want 0", got)
	}
}
