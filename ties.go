package gridpath

// resolveTies deterministically nudges one of a set of equally-costed
// frontier candidates ahead of the others. candidates are the nodes
// freshly relaxed while expanding a single parent, minF the minimum f
// among them, and epsilon the nudge (strictly smaller than the turn
// penalty, so a nudge can never overturn a shaped cost difference).
//
// It returns the adjusted node so the caller can reposition it in the
// open list, or nil when no qualifying tie was found or the preference
// table had nothing to say. In the latter case the tie persists and is
// broken by the open list's insertion-order fallback.
func resolveTies(grid *Grid, candidates []*Node, minF float64, preferences Preferences, epsilon float64) *Node {
	tied := make([]*Node, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.f == minF {
			tied = append(tied, candidate)
		}
	}

	var first, second *Node
	switch {
	case len(tied) == 2:
		first, second = tied[0], tied[1]
	case len(tied) > 2:
		// The pair to resolve is the two candidates sharing a row or
		// column with each other. Diagonal candidates have no single
		// movement direction and never qualify, which excludes the
		// diagonal outlier of a three-way tie from the pairing.
	pairSearch:
		for i := 0; i < len(tied); i++ {
			if _, ok := candidateDirection(grid, tied[i]); !ok {
				continue
			}
			for j := i + 1; j < len(tied); j++ {
				if _, ok := candidateDirection(grid, tied[j]); !ok {
					continue
				}
				if tied[i].X == tied[j].X || tied[i].Y == tied[j].Y {
					first, second = tied[i], tied[j]
					break pairSearch
				}
			}
		}
	}
	if first == nil || second == nil {
		return nil
	}

	firstDir, ok := candidateDirection(grid, first)
	if !ok {
		return nil
	}
	secondDir, ok := candidateDirection(grid, second)
	if !ok {
		return nil
	}

	preferred, ok := preferences.Preferred(firstDir, secondDir)
	if !ok {
		return nil
	}

	var winner *Node
	switch preferred {
	case firstDir:
		winner = first
	case secondDir:
		winner = second
	default:
		return nil
	}
	winner.g -= epsilon
	winner.f = winner.g + winner.h
	return winner
}

// candidateDirection is the direction of the step that reached the
// candidate from its parent.
func candidateDirection(grid *Grid, node *Node) (Direction, bool) {
	if node.parent < 0 {
		return NoPreference, false
	}
	parent := &grid.nodes[node.parent]
	return stepDirection(parent.X, parent.Y, node.X, node.Y)
}
