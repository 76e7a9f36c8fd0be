package gridpath

import "fmt"

// Point is a grid coordinate.
type Point struct {
	X int
	Y int
}

// Path is an ordered sequence of coordinates from start to goal inclusive.
type Path []Point

// Node is a grid cell plus the search-scoped bookkeeping attached to it.
// Search fields are lazily initialized on first discovery and cleared by
// Grid.CleanUp before the grid is reused. Walkability is owned by the
// Grid, not the Node.
type Node struct {
	X int
	Y int

	g float64
	h float64
	f float64

	opened  bool
	closed  bool
	hCached bool

	// turned records whether the step that reached this node changed
	// direction; lastTurnX/lastTurnY are the coordinates of the most
	// recent direction change on the path to this node.
	turned    bool
	lastTurnX int
	lastTurnY int

	// parent is an index into the grid's node arena (-1 = none), so a
	// cleanup between refinement iterations can never leave a dangling
	// reference.
	parent int32

	heapIndex int
	seq       uint64
}

// G returns the accumulated cost from the start node.
func (n *Node) G() float64 { return n.g }

// H returns the cached heuristic estimate to the goal.
func (n *Node) H() float64 { return n.h }

// F returns the total estimated cost g+h.
func (n *Node) F() float64 { return n.f }

// Opened reports whether the node has been discovered by the search.
func (n *Node) Opened() bool { return n.opened }

// Closed reports whether the node's cost has been finalized.
func (n *Node) Closed() bool { return n.closed }

func (n *Node) reset() {
	n.g = 0
	n.h = 0
	n.f = 0
	n.opened = false
	n.closed = false
	n.hCached = false
	n.turned = false
	n.lastTurnX = 0
	n.lastTurnY = 0
	n.parent = -1
	n.heapIndex = 0
	n.seq = 0
}

// Grid stores the node arena and the walkability matrix. A grid and its
// nodes are mutable shared state exclusively owned by an in-progress
// search; concurrent searches on the same Grid instance are unsafe and
// must be serialized by the caller or run against independent copies.
type Grid struct {
	Width  int
	Height int

	nodes    []Node
	walkable []bool
}

// NewGrid returns a fully walkable grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("gridpath: invalid grid dimensions %dx%d", width, height))
	}
	grid := &Grid{
		Width:    width,
		Height:   height,
		nodes:    make([]Node, width*height),
		walkable: make([]bool, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			node := &grid.nodes[y*width+x]
			node.X = x
			node.Y = y
			node.parent = -1
			grid.walkable[y*width+x] = true
		}
	}
	return grid
}

// NewGridFromMatrix builds a grid from a row-major matrix where zero
// means walkable and any other value means blocked.
func NewGridFromMatrix(matrix [][]int) *Grid {
	height := len(matrix)
	if height == 0 {
		panic("gridpath: empty matrix")
	}
	width := len(matrix[0])
	grid := NewGrid(width, height)
	for y, row := range matrix {
		if len(row) != width {
			panic(fmt.Sprintf("gridpath: ragged matrix row %d", y))
		}
		for x, cell := range row {
			if cell != 0 {
				grid.walkable[y*width+x] = false
			}
		}
	}
	return grid
}

func (g *Grid) index(x, y int) int32 { return int32(y*g.Width + x) }

// IsInside reports whether the coordinate lies within the grid bounds.
func (g *Grid) IsInside(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// NodeAt returns the arena node at (x, y). It panics on out-of-bounds
// coordinates: invalid lookups are precondition violations and must
// fail fast rather than corrupt the search.
func (g *Grid) NodeAt(x, y int) *Node {
	if !g.IsInside(x, y) {
		panic(fmt.Sprintf("gridpath: coordinate (%d, %d) outside %dx%d grid", x, y, g.Width, g.Height))
	}
	return &g.nodes[g.index(x, y)]
}

// IsWalkableAt reports whether the coordinate is inside the grid and
// not blocked.
func (g *Grid) IsWalkableAt(x, y int) bool {
	return g.IsInside(x, y) && g.walkable[g.index(x, y)]
}

// SetWalkableAt toggles the walkability of a cell.
func (g *Grid) SetWalkableAt(x, y int, walkable bool) {
	g.walkable[g.index(x, y)] = walkable
}

// Neighbors returns the walkable neighbors of the node under the given
// diagonal-movement policy, in a fixed order (up, right, down, left,
// then the admitted diagonals), so repeated searches expand the
// frontier identically.
func (g *Grid) Neighbors(node *Node, diagonal DiagonalMovement) []*Node {
	x, y := node.X, node.Y
	neighbors := make([]*Node, 0, 8)

	up := g.IsWalkableAt(x, y-1)
	right := g.IsWalkableAt(x+1, y)
	down := g.IsWalkableAt(x, y+1)
	left := g.IsWalkableAt(x-1, y)

	if up {
		neighbors = append(neighbors, g.NodeAt(x, y-1))
	}
	if right {
		neighbors = append(neighbors, g.NodeAt(x+1, y))
	}
	if down {
		neighbors = append(neighbors, g.NodeAt(x, y+1))
	}
	if left {
		neighbors = append(neighbors, g.NodeAt(x-1, y))
	}

	var upLeft, upRight, downRight, downLeft bool
	switch diagonal {
	case DiagonalNever:
	case DiagonalOnlyWhenNoObstacles:
		upLeft = left && up
		upRight = up && right
		downRight = right && down
		downLeft = down && left
	case DiagonalIfAtMostOneObstacle:
		upLeft = left || up
		upRight = up || right
		downRight = right || down
		downLeft = down || left
	case DiagonalAlways:
		upLeft, upRight, downRight, downLeft = true, true, true, true
	default:
		panic(fmt.Sprintf("gridpath: unknown diagonal movement policy %d", diagonal))
	}

	if upLeft && g.IsWalkableAt(x-1, y-1) {
		neighbors = append(neighbors, g.NodeAt(x-1, y-1))
	}
	if upRight && g.IsWalkableAt(x+1, y-1) {
		neighbors = append(neighbors, g.NodeAt(x+1, y-1))
	}
	if downRight && g.IsWalkableAt(x+1, y+1) {
		neighbors = append(neighbors, g.NodeAt(x+1, y+1))
	}
	if downLeft && g.IsWalkableAt(x-1, y+1) {
		neighbors = append(neighbors, g.NodeAt(x-1, y+1))
	}
	return neighbors
}

// CleanUp resets the search-scoped fields of the listed nodes, leaving
// the one protected coordinate untouched. The refinement loop uses the
// protection for the cell it just blocked; the start node is simply
// omitted from the dirty list by the engine.
func (g *Grid) CleanUp(dirty []Point, except Point) {
	for _, coord := range dirty {
		if coord == except {
			continue
		}
		g.NodeAt(coord.X, coord.Y).reset()
	}
}

// Reset clears the search-scoped fields of every node in the arena.
// Walkability is untouched.
func (g *Grid) Reset() {
	for i := range g.nodes {
		g.nodes[i].reset()
	}
}
