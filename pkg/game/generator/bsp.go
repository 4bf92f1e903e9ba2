package generator

import (
	"math/rand"

	"dungeonforge/pkg/engine/catalog"
	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/assemble"
)

// BSPGenerator generates maps using Binary Space Partitioning
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom is a rectangular block of room cells within a leaf
type bspRoom struct {
	x, y, width, height int
}

func (r *bspRoom) contains(loc world.Location) bool {
	return loc.Col >= r.x && loc.Col < r.x+r.width && loc.Row >= r.y && loc.Row < r.y+r.height
}

// Constants for BSP generation
const (
	minNodeSize = 6 // Minimum size of a BSP node
	minRoomSize = 3 // Minimum size of a room
	roomPadding = 2 // Padding between room and node edge
)

// Generate partitions the grid, carves one block of rooms per leaf and
// joins the blocks with passages
func (g *BSPGenerator) Generate(cat *catalog.Catalog, opts Options) (*world.Grid, error) {
	a, err := newRun(cat, opts)
	if err != nil {
		return nil, err
	}
	// Blocks are laid down whole; the mask would punch holes in them.
	a.Mask = nil
	rng := a.Rand()

	// One cell of border is kept clear for the passages to run around
	root := &bspNode{
		x:      1,
		y:      1,
		width:  opts.Cols - 2,
		height: opts.Rows - 2,
	}
	splitBSP(rng, root, minNodeSize)
	createRooms(rng, root)

	rooms := collectRooms(root)
	for _, room := range rooms {
		carveRoom(a, room)
	}
	a.Logger().Printf("bsp: %d rooms", len(rooms))

	a.ConnectAllRegions()
	return a.Grid, nil
}

// splitBSP recursively splits a BSP node
func splitBSP(rng *rand.Rand, node *bspNode, minSize int) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return // Too small to split
	}

	// Decide split direction
	var splitHorizontal bool
	if node.width > node.height && node.width >= minSize*2 {
		splitHorizontal = false
	} else if node.height > node.width && node.height >= minSize*2 {
		splitHorizontal = true
	} else if node.width >= minSize*2 && node.height >= minSize*2 {
		splitHorizontal = rng.Intn(2) == 0
	} else if node.width >= minSize*2 {
		splitHorizontal = false
	} else {
		splitHorizontal = true
	}

	if splitHorizontal {
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(rng, node.left, minSize)
	splitBSP(rng, node.right, minSize)
}

// createRooms creates rooms in leaf nodes. Leaves too small to hold a room
// with its padding stay empty.
func createRooms(rng *rand.Rand, node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			createRooms(rng, node.left)
		}
		if node.right != nil {
			createRooms(rng, node.right)
		}
		return
	}

	if node.width < minRoomSize+roomPadding || node.height < minRoomSize+roomPadding {
		return
	}

	roomWidth := minRoomSize + rng.Intn(node.width-minRoomSize-roomPadding+1)
	roomHeight := minRoomSize + rng.Intn(node.height-minRoomSize-roomPadding+1)

	node.room = &bspRoom{
		x:      node.x + rng.Intn(node.width-roomWidth),
		y:      node.y + rng.Intn(node.height-roomHeight),
		width:  roomWidth,
		height: roomHeight,
	}
}

// carveRoom fills the block with rooms open toward each other and closed
// on the block's outline
func carveRoom(a *assemble.Assembler, room *bspRoom) {
	for row := room.y; row < room.y+room.height; row++ {
		for col := room.x; col < room.x+room.width; col++ {
			loc := world.Loc(row, col)
			f := roomFilter(a.Options.SubsetID, func(dir world.Direction) bool {
				return room.contains(loc.Step(dir))
			})
			a.PlotRandomRoom(row, col, f, true)
		}
	}
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom

	if node.room != nil {
		rooms = append(rooms, node.room)
	}

	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}
