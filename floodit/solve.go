package floodit

import (
	"github.com/bgw/flood-it-game/astar"
	"github.com/bgw/flood-it-game/board"
	"github.com/bgw/flood-it-game/greedy"
)

func neighbors(b board.Board) []board.Board { return b.NeighborBoards() }
func distance(a, b board.Board) float64     { return 1 }
func getKey(b board.Board) string           { return b.Hash() }

func isUniform(b board.Board) bool { return len(b.Colors()) == 1 }

func heuristicFor(start board.Board, o Options) (func(board.Board) float64, error) {
	if o.Admissible {
		return AdmissibleHeuristic(start)
	}
	return WeightedHeuristic(start)
}

// fastSolverFrom wraps a greedy.Walker driven by heuristic (prefer-lower)
// into an astar.Options.FastSolver: at each A* expansion it offers the
// walker's own greedy completion as a shortcut, the way package greedy's
// doc.go promises.
func fastSolverFrom(heuristic func(board.Board) float64) func(board.Board) (float64, []board.Board, bool) {
	walker := greedy.New(
		isUniform,
		neighbors,
		greedy.WithScore[board.Board](heuristic),
		greedy.WithPreferLower[board.Board](),
		greedy.WithGetKey[board.Board](getKey),
	)

	return func(b board.Board) (float64, []board.Board, bool) {
		path, err := walker.Walk(b)
		if err != nil {
			return 0, nil, false
		}
		return float64(len(path) - 1), path, true
	}
}

// SolveBoard drives A* from start to any uniform-color terminal board and
// returns the full path, start through terminal inclusive. Moves are
// recoverable by reading At(0) of each successor.
func SolveBoard(start board.Board, opts ...Option) ([]board.Board, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	heuristic, err := heuristicFor(start, o)
	if err != nil {
		return nil, err
	}

	return astar.Search(
		start,
		isUniform,
		neighbors,
		distance,
		astar.WithHeuristic(heuristic),
		astar.WithGetKey[board.Board](getKey),
		astar.WithFastSolver(fastSolverFrom(heuristic)),
	)
}

// SolveBoardAsync runs SolveBoard cooperatively: callback receives the
// final path or error, and the returned Handle can pause and resume the
// search between asyncBlockSize-iteration bursts.
func SolveBoardAsync(start board.Board, callback func([]board.Board, error), opts ...Option) (*astar.Handle[board.Board], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	heuristic, err := heuristicFor(start, o)
	if err != nil {
		return nil, err
	}

	return astar.SearchAsync(
		start,
		isUniform,
		neighbors,
		distance,
		astar.WithHeuristic(heuristic),
		astar.WithGetKey[board.Board](getKey),
		astar.WithFastSolver(fastSolverFrom(heuristic)),
		astar.WithCallback(callback),
	), nil
}

// SolveBottomRight solves only far enough to bring the board's bottom-right
// corner into the top-left blob, which a caller can use to bound a full
// SolveBoard run; SolveBoard itself does not call it.
func SolveBottomRight(start board.Board, opts ...Option) ([]board.Board, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	heuristic, err := heuristicFor(start, o)
	if err != nil {
		return nil, err
	}

	bottomRight := start.Len() - 1
	bottomRightJoined := func(b board.Board) bool {
		for _, p := range b.BlobPositions(0) {
			if p == bottomRight {
				return true
			}
		}
		return false
	}

	return astar.Search(
		start,
		bottomRightJoined,
		neighbors,
		distance,
		astar.WithHeuristic(heuristic),
		astar.WithGetKey[board.Board](getKey),
		astar.WithFastSolver(fastSolverFrom(heuristic)),
	)
}
