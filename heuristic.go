package gridpath

import "math"

// Heuristic estimates the remaining distance from absolute axis deltas.
// Both deltas are non-negative.
type Heuristic func(dx, dy int) float64

// Manhattan returns dx + dy. Inadmissible once diagonal steps exist.
func Manhattan(dx, dy int) float64 {
	return float64(dx + dy)
}

// Euclidean returns the straight-line distance.
func Euclidean(dx, dy int) float64 {
	return math.Hypot(float64(dx), float64(dy))
}

// Octile returns the exact distance when travel is restricted to the
// eight grid directions: diagonal steps cost math.Sqrt2.
func Octile(dx, dy int) float64 {
	const f = math.Sqrt2 - 1
	if dx < dy {
		return f*float64(dx) + float64(dy)
	}
	return f*float64(dy) + float64(dx)
}

// Chebyshev returns max(dx, dy).
func Chebyshev(dx, dy int) float64 {
	if dx > dy {
		return float64(dx)
	}
	return float64(dy)
}
