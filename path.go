package gridpath

import "math"

// Candidate is a completed path from one refinement iteration, retained
// with its terminal f-score for cross-iteration comparison.
type Candidate struct {
	Path Path
	F    float64
}

// Backtrace follows parent links from the given node to the root and
// returns the coordinates in start-to-goal order, both ends inclusive.
func Backtrace(grid *Grid, node *Node) Path {
	path := Path{{X: node.X, Y: node.Y}}
	current := node
	for current.parent >= 0 {
		current = &grid.nodes[current.parent]
		path = append(path, Point{X: current.X, Y: current.Y})
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// BiBacktrace joins the partial backtraces of two search frontiers that
// met in the middle: the trace to nodeA followed by the trace to nodeB
// reversed.
func BiBacktrace(grid *Grid, nodeA, nodeB *Node) Path {
	pathA := Backtrace(grid, nodeA)
	pathB := Backtrace(grid, nodeB)
	for i, j := 0, len(pathB)-1; i < j; i, j = i+1, j-1 {
		pathB[i], pathB[j] = pathB[j], pathB[i]
	}
	return append(pathA, pathB...)
}

// PathLength returns the sum of Euclidean distances between consecutive
// points.
func PathLength(path Path) float64 {
	length := 0.0
	for i := 1; i < len(path); i++ {
		dx := float64(path[i].X - path[i-1].X)
		dy := float64(path[i].Y - path[i-1].Y)
		length += math.Hypot(dx, dy)
	}
	return length
}

// Interpolate rasterizes the line segment between two cells with
// Bresenham's algorithm. Both endpoints are included and every
// consecutive pair of produced cells differs by at most 1 per axis.
func Interpolate(x0, y0, x1, y1 int) Path {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}

	line := make(Path, 0, maxInt(dx, dy)+1)
	errTerm := dx - dy
	for {
		line = append(line, Point{X: x0, Y: y0})
		if x0 == x1 && y0 == y1 {
			break
		}
		doubled := 2 * errTerm
		if doubled > -dy {
			errTerm -= dy
			x0 += sx
		}
		if doubled < dx {
			errTerm += dx
			y0 += sy
		}
	}
	return line
}

// ExpandPath turns a compressed, turn-point-only path into a fully
// rasterized one by replacing each consecutive point pair with its
// interpolated cell run, omitting the duplicated junction cell between
// segments. Paths shorter than two points expand to an empty path.
func ExpandPath(path Path) Path {
	expanded := Path{}
	if len(path) < 2 {
		return expanded
	}
	for i := 0; i < len(path)-1; i++ {
		segment := Interpolate(path[i].X, path[i].Y, path[i+1].X, path[i+1].Y)
		expanded = append(expanded, segment[:len(segment)-1]...)
	}
	return append(expanded, path[len(path)-1])
}

// SmoothenPath simplifies a path by string pulling: it anchors at the
// true start, extends a line-of-sight test point by point, and commits
// the previous point as the new anchor whenever the interpolated line
// crosses a non-walkable cell. The true start and true end are always
// emitted, and no returned segment's interpolation crosses a blocked
// cell.
func SmoothenPath(grid *Grid, path Path) Path {
	if len(path) < 3 {
		return append(Path{}, path...)
	}
	anchorX, anchorY := path[0].X, path[0].Y
	smoothed := Path{{X: anchorX, Y: anchorY}}
	for i := 2; i < len(path); i++ {
		line := Interpolate(anchorX, anchorY, path[i].X, path[i].Y)
		blocked := false
		for _, cell := range line[1:] {
			if !grid.IsWalkableAt(cell.X, cell.Y) {
				blocked = true
				break
			}
		}
		if blocked {
			anchor := path[i-1]
			smoothed = append(smoothed, anchor)
			anchorX, anchorY = anchor.X, anchor.Y
		}
	}
	return append(smoothed, path[len(path)-1])
}

// CompressPath removes interior points whose incoming and outgoing
// direction vectors are identical, leaving the minimum set of turn
// points that preserves the path's geometric shape.
func CompressPath(path Path) Path {
	if len(path) < 3 {
		return append(Path{}, path...)
	}

	startX, startY := path[0].X, path[0].Y
	prevX, prevY := path[1].X, path[1].Y
	dirX, dirY := normalizedDirection(prevX-startX, prevY-startY)

	compressed := Path{{X: startX, Y: startY}}
	for i := 2; i < len(path); i++ {
		lastX, lastY := prevX, prevY
		lastDirX, lastDirY := dirX, dirY

		prevX, prevY = path[i].X, path[i].Y
		dirX, dirY = normalizedDirection(prevX-lastX, prevY-lastY)
		if dirX != lastDirX || dirY != lastDirY {
			compressed = append(compressed, Point{X: lastX, Y: lastY})
		}
	}
	return append(compressed, Point{X: prevX, Y: prevY})
}

// BestPath returns the candidate with the minimum terminal f-score.
// First-seen order breaks ties. ok is false for an empty candidate set.
func BestPath(candidates []Candidate) (best Candidate, ok bool) {
	for i, candidate := range candidates {
		if i == 0 || candidate.F < best.F {
			best = candidate
			ok = true
		}
	}
	return best, ok
}

func normalizedDirection(dx, dy int) (float64, float64) {
	magnitude := math.Hypot(float64(dx), float64(dy))
	if magnitude == 0 {
		return 0, 0
	}
	return float64(dx) / magnitude, float64(dy) / magnitude
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
