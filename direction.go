package gridpath

// Direction is one of the four orthogonal movement directions. The zero
// value NoPreference doubles as the "leave the tie alone" entry in a
// Preferences table.
type Direction int

const (
	NoPreference Direction = iota
	Up
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// stepDirection classifies a single orthogonal step. Diagonal steps and
// non-steps report ok = false; they never participate in directional
// tie resolution.
func stepDirection(fromX, fromY, toX, toY int) (Direction, bool) {
	dx, dy := toX-fromX, toY-fromY
	switch {
	case dx == 0 && dy == -1:
		return Up, true
	case dx == 1 && dy == 0:
		return Right, true
	case dx == 0 && dy == 1:
		return Down, true
	case dx == -1 && dy == 0:
		return Left, true
	default:
		return NoPreference, false
	}
}

// DirectionPair is an unordered pair of distinct directions, normalized
// so that A < B. Build one with PairOf.
type DirectionPair struct {
	A Direction
	B Direction
}

// PairOf returns the canonical unordered pair of two directions.
// PairOf(a, b) == PairOf(b, a).
func PairOf(a, b Direction) DirectionPair {
	if b < a {
		a, b = b, a
	}
	return DirectionPair{A: a, B: b}
}

// Preferences maps the six unordered direction pairs to the direction
// that should win an equal-cost tie between them. A missing entry or a
// NoPreference value leaves the tie to the open list's insertion-order
// fallback.
type Preferences map[DirectionPair]Direction

// Preferred looks up the winning direction for an unordered pair.
func (p Preferences) Preferred(a, b Direction) (Direction, bool) {
	winner, ok := p[PairOf(a, b)]
	if !ok || winner == NoPreference {
		return NoPreference, false
	}
	return winner, true
}
