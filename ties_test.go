package gridpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEpsilon = 0.001

// tieCandidate wires a node to a parent the way the engine does during
// relaxation, so the resolver can classify its direction.
func tieCandidate(grid *Grid, parentX, parentY, x, y int, f float64) *Node {
	node := grid.NodeAt(x, y)
	node.g = f
	node.h = 0
	node.f = f
	node.opened = true
	node.parent = grid.index(parentX, parentY)
	return node
}

func TestResolveTiesTwoWay(t *testing.T) {
	grid := NewGrid(5, 5)
	up := tieCandidate(grid, 2, 2, 2, 1, 5)
	right := tieCandidate(grid, 2, 2, 3, 2, 5)
	preferences := Preferences{PairOf(Up, Right): Up}

	winner := resolveTies(grid, []*Node{up, right}, 5, preferences, testEpsilon)

	require.Same(t, up, winner)
	assert.InDelta(t, 5-testEpsilon, up.f, 1e-12)
	assert.InDelta(t, 5-testEpsilon, up.g, 1e-12)
	assert.Equal(t, 5.0, right.f, "the losing candidate is untouched")
}

func TestResolveTiesThreeWayPairsSharedAxis(t *testing.T) {
	grid := NewGrid(5, 5)
	up := tieCandidate(grid, 2, 2, 2, 1, 5)
	down := tieCandidate(grid, 2, 2, 2, 3, 5)
	right := tieCandidate(grid, 2, 2, 3, 2, 5)
	preferences := Preferences{PairOf(Up, Down): Down}

	winner := resolveTies(grid, []*Node{up, right, down}, 5, preferences, testEpsilon)

	require.Same(t, down, winner)
	assert.InDelta(t, 5-testEpsilon, down.f, 1e-12)
	assert.Equal(t, 5.0, up.f)
	assert.Equal(t, 5.0, right.f)
}

func TestResolveTiesThreeWayExcludesDiagonal(t *testing.T) {
	grid := NewGrid(5, 5)
	up := tieCandidate(grid, 2, 2, 2, 1, 5)
	right := tieCandidate(grid, 2, 2, 3, 2, 5)
	diagonal := tieCandidate(grid, 2, 2, 3, 1, 5)
	preferences := Preferences{
		PairOf(Up, Right): Up,
		PairOf(Up, Down):  Down,
	}

	// the diagonal shares a row with up and a column with right, but a
	// diagonal step has no direction; with no orthogonal pair sharing
	// an axis there is nothing to resolve
	winner := resolveTies(grid, []*Node{up, right, diagonal}, 5, preferences, testEpsilon)

	assert.Nil(t, winner)
	assert.Equal(t, 5.0, up.f)
	assert.Equal(t, 5.0, right.f)
	assert.Equal(t, 5.0, diagonal.f)
}

func TestResolveTiesNoPreferenceIsNoOp(t *testing.T) {
	grid := NewGrid(5, 5)
	up := tieCandidate(grid, 2, 2, 2, 1, 5)
	right := tieCandidate(grid, 2, 2, 3, 2, 5)

	winner := resolveTies(grid, []*Node{up, right}, 5, Preferences{}, testEpsilon)

	assert.Nil(t, winner)
	assert.Equal(t, 5.0, up.f)
	assert.Equal(t, 5.0, right.f)
}

func TestResolveTiesIgnoresAlreadyOrderedCandidates(t *testing.T) {
	grid := NewGrid(5, 5)
	cheaper := tieCandidate(grid, 2, 2, 2, 1, 5)
	dearer := tieCandidate(grid, 2, 2, 3, 2, 5.5)
	preferences := Preferences{PairOf(Up, Right): Right}

	// only one candidate matches the minimum: no qualifying tie, and
	// the pre-existing ordering is never overturned
	winner := resolveTies(grid, []*Node{cheaper, dearer}, 5, preferences, testEpsilon)

	assert.Nil(t, winner)
	assert.Equal(t, 5.0, cheaper.f)
	assert.Equal(t, 5.5, dearer.f)
}

func TestResolveTiesChangesFByExactlyEpsilon(t *testing.T) {
	grid := NewGrid(5, 5)
	up := tieCandidate(grid, 2, 2, 2, 1, 5)
	right := tieCandidate(grid, 2, 2, 3, 2, 5)
	preferences := Preferences{PairOf(Up, Right): Right}

	winner := resolveTies(grid, []*Node{up, right}, 5, preferences, testEpsilon)

	require.Same(t, right, winner)
	assert.InDelta(t, testEpsilon, 5-right.f, 1e-12)
}
