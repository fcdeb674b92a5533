package floodit

import (
	"math"

	"github.com/bgw/flood-it-game/board"
	"github.com/bgw/flood-it-game/greedy"
)

// SolveBoardGreedy drives the greedy walker directly, scoring each
// candidate board by the admissible heuristic (lower is better) instead of
// running A*. When lookAhead is > 0, a candidate is scored by the best
// heuristic value reachable from it one ply further, rather than its own
// heuristic value — a cheap way to look past an immediate local minimum.
func SolveBoardGreedy(start board.Board, lookAhead int) ([]board.Board, error) {
	heuristic, err := AdmissibleHeuristic(start)
	if err != nil {
		return nil, err
	}

	score := heuristic
	if lookAhead > 0 {
		score = func(b board.Board) float64 {
			candidates := b.NeighborBoards()
			if len(candidates) == 0 {
				return heuristic(b)
			}
			best := math.Inf(1)
			for _, c := range candidates {
				if h := heuristic(c); h < best {
					best = h
				}
			}
			return best
		}
	}

	walker := greedy.New(
		isUniform,
		neighbors,
		greedy.WithScore[board.Board](score),
		greedy.WithPreferLower[board.Board](),
		greedy.WithGetKey[board.Board](getKey),
	)

	return walker.Walk(start)
}
