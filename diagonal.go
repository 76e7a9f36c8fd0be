package gridpath

// DiagonalMovement selects which diagonal steps the neighbor
// enumeration admits.
type DiagonalMovement int

const (
	// DiagonalNever restricts movement to the four orthogonal
	// directions.
	DiagonalNever DiagonalMovement = iota
	// DiagonalIfAtMostOneObstacle admits a diagonal step when at least
	// one of its two adjacent orthogonal cells is walkable.
	DiagonalIfAtMostOneObstacle
	// DiagonalOnlyWhenNoObstacles admits a diagonal step only when both
	// adjacent orthogonal cells are walkable.
	DiagonalOnlyWhenNoObstacles
	// DiagonalAlways admits every diagonal step regardless of the
	// adjacent cells.
	DiagonalAlways
)

func (d DiagonalMovement) String() string {
	switch d {
	case DiagonalNever:
		return "never"
	case DiagonalIfAtMostOneObstacle:
		return "if-at-most-one-obstacle"
	case DiagonalOnlyWhenNoObstacles:
		return "only-when-no-obstacles"
	case DiagonalAlways:
		return "always"
	default:
		return "unknown"
	}
}
