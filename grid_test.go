package gridpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridFromMatrix(t *testing.T) {
	grid := NewGridFromMatrix([][]int{
		{0, 0, 1},
		{0, 1, 0},
	})
	assert.Equal(t, 3, grid.Width)
	assert.Equal(t, 2, grid.Height)
	assert.True(t, grid.IsWalkableAt(0, 0))
	assert.False(t, grid.IsWalkableAt(2, 0))
	assert.False(t, grid.IsWalkableAt(1, 1))
	assert.True(t, grid.IsWalkableAt(2, 1))
}

func TestWalkabilityOutsideBounds(t *testing.T) {
	grid := NewGrid(3, 3)
	assert.False(t, grid.IsWalkableAt(-1, 0))
	assert.False(t, grid.IsWalkableAt(0, 3))
	assert.Panics(t, func() { grid.NodeAt(3, 0) })
}

func TestSetWalkableAt(t *testing.T) {
	grid := NewGrid(3, 3)
	grid.SetWalkableAt(1, 1, false)
	assert.False(t, grid.IsWalkableAt(1, 1))
	grid.SetWalkableAt(1, 1, true)
	assert.True(t, grid.IsWalkableAt(1, 1))
}

func neighborPoints(grid *Grid, node *Node, diagonal DiagonalMovement) []Point {
	nodes := grid.Neighbors(node, diagonal)
	points := make([]Point, len(nodes))
	for i, n := range nodes {
		points[i] = Point{X: n.X, Y: n.Y}
	}
	return points
}

func TestNeighborsNever(t *testing.T) {
	grid := NewGrid(3, 3)
	center := grid.NodeAt(1, 1)
	assert.Equal(t, []Point{{1, 0}, {2, 1}, {1, 2}, {0, 1}}, neighborPoints(grid, center, DiagonalNever))
}

func TestNeighborsAlways(t *testing.T) {
	grid := NewGrid(3, 3)
	center := grid.NodeAt(1, 1)
	assert.Len(t, neighborPoints(grid, center, DiagonalAlways), 8)
}

func TestNeighborsOnlyWhenNoObstacles(t *testing.T) {
	grid := NewGrid(3, 3)
	grid.SetWalkableAt(1, 0, false) // block up
	center := grid.NodeAt(1, 1)

	points := neighborPoints(grid, center, DiagonalOnlyWhenNoObstacles)
	// both diagonals adjacent to the blocked cell are excluded
	assert.Equal(t, []Point{{2, 1}, {1, 2}, {0, 1}, {2, 2}, {0, 2}}, points)
}

func TestNeighborsIfAtMostOneObstacle(t *testing.T) {
	grid := NewGrid(3, 3)
	grid.SetWalkableAt(1, 0, false) // block up
	center := grid.NodeAt(1, 1)

	points := neighborPoints(grid, center, DiagonalIfAtMostOneObstacle)
	// diagonals stay admitted while their other adjacent cell is walkable
	assert.Equal(t, []Point{{2, 1}, {1, 2}, {0, 1}, {0, 0}, {2, 0}, {2, 2}, {0, 2}}, points)
}

func TestNeighborsAtCorner(t *testing.T) {
	grid := NewGrid(3, 3)
	corner := grid.NodeAt(0, 0)
	assert.Equal(t, []Point{{1, 0}, {0, 1}}, neighborPoints(grid, corner, DiagonalNever))
	assert.Equal(t, []Point{{1, 0}, {0, 1}, {1, 1}}, neighborPoints(grid, corner, DiagonalAlways))
}

func TestCleanUpProtectsOneCoordinate(t *testing.T) {
	grid := NewGrid(3, 3)
	touched := []Point{{0, 0}, {1, 0}, {1, 1}}
	for _, p := range touched {
		node := grid.NodeAt(p.X, p.Y)
		node.g = 3
		node.f = 5
		node.opened = true
		node.closed = true
		node.hCached = true
		node.parent = 0
	}

	grid.CleanUp(touched, Point{X: 1, Y: 0})

	for _, p := range []Point{{0, 0}, {1, 1}} {
		node := grid.NodeAt(p.X, p.Y)
		assert.False(t, node.opened, "node %v should be reset", p)
		assert.False(t, node.closed)
		assert.False(t, node.hCached)
		assert.Equal(t, int32(-1), node.parent)
		assert.Zero(t, node.g)
		assert.Zero(t, node.f)
	}

	protected := grid.NodeAt(1, 0)
	require.True(t, protected.opened, "the protected coordinate keeps its state")
	assert.Equal(t, 3.0, protected.g)
}

func TestGridReset(t *testing.T) {
	grid := NewGrid(2, 2)
	grid.SetWalkableAt(1, 1, false)
	node := grid.NodeAt(0, 1)
	node.opened = true
	node.g = 2

	grid.Reset()

	assert.False(t, grid.NodeAt(0, 1).opened)
	assert.Zero(t, grid.NodeAt(0, 1).g)
	assert.False(t, grid.IsWalkableAt(1, 1), "reset does not touch walkability")
}
