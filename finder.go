package gridpath

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"
)

// Result contains the outcome of a search.
type Result struct {
	// Path is the selected path from start to goal inclusive. Empty
	// when no path exists; a single point when start equals goal.
	Path Path
	// TotalCost is the terminal f-score of the winning candidate. At
	// the goal the heuristic is zero, so this equals the accumulated
	// shaped cost from the start.
	TotalCost     float64
	ExpandedNodes int
	// Iterations is how many refinement passes ran.
	Iterations int
	Found      bool
}

// Search executes the A* search with cost shaping and the
// multi-iteration tie-refinement loop, and returns the best candidate
// path. "No path" is an ordinary result with an empty Path, not an
// error. The context bounds the work: on expiry the best candidate
// recorded so far is returned.
//
// The grid and its nodes are exclusively owned by this call until it
// returns; the refinement loop mutates walkability and node bookkeeping
// in place and restores both before returning.
func Search(ctx context.Context, grid *Grid, start, end Point, opts ...Option) Result {
	options := applyOptions(opts)
	logger := options.Logger

	maxIterations := options.maxIterations()
	var (
		candidates []Candidate
		blocked    []Point
		allDirty   []Point
		expanded   int
		iterations int
	)

	for iteration := 1; iteration <= maxIterations; iteration++ {
		iterations = iteration
		pass := newPassState(grid, start, end, options)
		goal, found, canceled, passExpanded := pass.run(ctx)
		expanded += passExpanded
		allDirty = append(allDirty, pass.dirty...)

		if canceled {
			logger.WithField("iteration", iteration).Debug("deadline expired, returning best candidate so far")
			break
		}
		if !found {
			logger.WithField("iteration", iteration).Debug("open list exhausted without reaching the goal")
			break
		}

		path := Backtrace(grid, goal)
		candidates = append(candidates, Candidate{Path: path, F: goal.f})
		logger.WithFields(logrus.Fields{
			"iteration": iteration,
			"points":    len(path),
			"f":         goal.f,
		}).Debug("candidate path recorded")

		if iteration == maxIterations {
			break
		}
		if len(path) < 3 {
			// Start adjacent to (or equal to) the goal: provably
			// optimal, nothing to refine.
			break
		}

		// Force the next pass to explore an alternative by blocking the
		// first step this pass took away from the start, then reset the
		// bookkeeping it touched. The start node is absent from the
		// dirty list and the blocked cell is the protected coordinate.
		firstStep := path[1]
		grid.SetWalkableAt(firstStep.X, firstStep.Y, false)
		blocked = append(blocked, firstStep)
		grid.CleanUp(pass.dirty, firstStep)
		logger.WithFields(logrus.Fields{
			"iteration": iteration,
			"blocked":   firstStep,
		}).Debug("blocked first step, re-running search")
	}

	for _, cell := range blocked {
		grid.SetWalkableAt(cell.X, cell.Y, true)
	}
	allDirty = append(allDirty, blocked...)
	allDirty = append(allDirty, start)
	grid.CleanUp(allDirty, Point{X: -1, Y: -1})

	best, ok := BestPath(candidates)
	if !ok {
		return Result{Path: Path{}, ExpandedNodes: expanded, Iterations: iterations}
	}
	logger.WithFields(logrus.Fields{
		"candidates": len(candidates),
		"f":          best.F,
	}).Debug("best candidate selected")
	return Result{
		Path:          best.Path,
		TotalCost:     best.F,
		ExpandedNodes: expanded,
		Iterations:    iterations,
		Found:         true,
	}
}

// FindPath is the plain entry point: it runs Search and returns only
// the coordinates.
func FindPath(ctx context.Context, startX, startY, endX, endY int, grid *Grid, opts ...Option) Path {
	return Search(ctx, grid, Point{X: startX, Y: startY}, Point{X: endX, Y: endY}, opts...).Path
}

// passState is the per-iteration search state: one open list, the
// coordinates it dirtied, and a scratch buffer for tie detection.
type passState struct {
	grid      *Grid
	options   *Options
	open      *openList
	startNode *Node
	endNode   *Node
	dirty     []Point
	relaxed   []*Node
}

func newPassState(grid *Grid, start, end Point, options *Options) *passState {
	pass := &passState{
		grid:    grid,
		options: options,
		open:    newOpenList(),
	}
	pass.startNode = grid.NodeAt(start.X, start.Y)
	pass.endNode = grid.NodeAt(end.X, end.Y)

	startNode := pass.startNode
	startNode.g = 0
	startNode.h = options.Weight * options.Heuristic(absInt(start.X-end.X), absInt(start.Y-end.Y))
	startNode.hCached = true
	startNode.f = startNode.h
	startNode.opened = true
	startNode.closed = false
	startNode.parent = -1
	startNode.turned = false
	startNode.lastTurnX, startNode.lastTurnY = start.X, start.Y
	pass.open.push(startNode)
	return pass
}

// run pops and expands until the goal is closed, the frontier empties,
// or the context expires.
func (p *passState) run(ctx context.Context) (goal *Node, found, canceled bool, expanded int) {
	for !p.open.isEmpty() {
		if ctx.Err() != nil {
			return nil, false, true, expanded
		}
		node := p.open.popMin()
		if node.closed {
			continue
		}
		node.closed = true
		expanded++
		if node == p.endNode {
			return node, true, false, expanded
		}
		p.expand(node)
	}
	return nil, false, false, expanded
}

// expand relaxes every open neighbor of node, shaping the step cost
// with the turn penalty and momentum terms, then hands any equal-f
// frontier tie among the freshly relaxed neighbors to the resolver.
func (p *passState) expand(node *Node) {
	options := p.options
	minF := math.Inf(1)
	p.relaxed = p.relaxed[:0]

	for _, neighbor := range p.grid.Neighbors(node, options.DiagonalMovement) {
		if neighbor.closed {
			continue
		}

		stepCost := 1.0
		if neighbor.X != node.X && neighbor.Y != node.Y {
			stepCost = math.Sqrt2
		}
		tentativeG := node.g + stepCost

		turned := false
		if node.parent >= 0 {
			parent := &p.grid.nodes[node.parent]
			if neighbor.X-node.X != node.X-parent.X || neighbor.Y-node.Y != node.Y-parent.Y {
				turned = true
			}
		}
		if options.AvoidStaircase && turned {
			tentativeG += options.TurnPenalty
		}
		if options.UseMomentum {
			if turned {
				// A turn resets the reward baseline rather than erasing
				// all accumulated benefit: add back momentum scaled by
				// the heuristic distance travelled since the last turn.
				sinceTurn := options.Heuristic(absInt(node.X-node.lastTurnX), absInt(node.Y-node.lastTurnY))
				tentativeG += options.Momentum * sinceTurn
			} else {
				tentativeG -= options.Momentum
			}
		}

		if neighbor.opened && tentativeG >= neighbor.g {
			continue
		}
		wasOpened := neighbor.opened
		if !wasOpened {
			p.dirty = append(p.dirty, Point{X: neighbor.X, Y: neighbor.Y})
		}

		neighbor.g = tentativeG
		if !neighbor.hCached {
			neighbor.h = options.Weight *
				options.Heuristic(absInt(neighbor.X-p.endNode.X), absInt(neighbor.Y-p.endNode.Y))
			neighbor.hCached = true
		}
		neighbor.f = neighbor.g + neighbor.h
		neighbor.parent = p.grid.index(node.X, node.Y)
		neighbor.turned = turned
		if turned {
			neighbor.lastTurnX, neighbor.lastTurnY = node.X, node.Y
		} else {
			neighbor.lastTurnX, neighbor.lastTurnY = node.lastTurnX, node.lastTurnY
		}

		if wasOpened {
			p.open.update(neighbor)
		} else {
			neighbor.opened = true
			p.open.push(neighbor)
		}

		if neighbor.f < minF {
			minF = neighbor.f
		}
		p.relaxed = append(p.relaxed, neighbor)
	}

	if !options.BreakTies || len(p.relaxed) < 2 {
		return
	}
	if options.IgnoreStartTies && node == p.startNode {
		return
	}
	if winner := resolveTies(p.grid, p.relaxed, minF, options.Preferences, options.epsilon()); winner != nil {
		p.open.update(winner)
	}
}
