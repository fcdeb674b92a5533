package floodit

import (
	"math"

	"github.com/bgw/flood-it-game/board"
)

// AdmissibleHeuristic builds a heuristic-composition admissible heuristic
// for searches starting at start. The three per-corner navigation meshes it
// depends on are built once, up front;
// the returned closure is cheap to call repeatedly as A* expands nodes.
//
// At each query, it finds — over every "hard" corner not yet absorbed
// into the current top-left blob — the cheapest known route from the
// current perimeter to that corner, counts the colors such a route would
// leave untouched, and takes the worst case across corners. That is
// compared against a simpler bound (distinct colors remaining, minus one
// if the top-left blob is already whole) and the larger of the two wins.
// Both quantities are true lower bounds on moves remaining, since no move
// can do better than resolve one color and advance one step along any
// single required route.
func AdmissibleHeuristic(start board.Board) (func(board.Board) float64, error) {
	meshes, err := newCornerMeshes(start)
	if err != nil {
		return nil, err
	}

	return func(b board.Board) float64 {
		perimeter := b.PerimeterBlocks(0)
		if len(perimeter) == 0 {
			return 0 // filled board
		}

		testFrom := make(map[uint16]bool)
		for _, p := range perimeter {
			testFrom[meshes.blobifiedStart[p]] = true
		}

		topLeft := make(map[int]bool)
		for _, p := range b.BlobPositions(0) {
			topLeft[p] = true
		}
		isWhole := b.BlobIsWhole(0)
		colorsPresent := b.Colors()

		var longest float64
		for _, target := range meshes.targets {
			if topLeft[target] {
				continue
			}

			best := math.Inf(1)
			for from := range testFrom {
				path, err := meshes.pathTo(target, from)
				if err != nil {
					continue
				}
				total := float64(len(path)) + 1 + unhandledColors(meshes, b, path, colorsPresent, isWhole)
				if total < best {
					best = total
				}
			}
			if !math.IsInf(best, 1) && best > longest {
				longest = best
			}
		}

		baseline := float64(len(colorsPresent))
		if isWhole {
			baseline--
		}

		return math.Max(baseline, longest)
	}, nil
}

// unhandledColors counts colors present on b that appear neither among
// the blobs path passes through, nor — if the top-left blob is whole —
// as b's own color at position 0.
func unhandledColors(meshes *cornerMeshes, b board.Board, path []string, colorsPresent []byte, topLeftWhole bool) float64 {
	handled := make(map[byte]bool, len(path))
	for _, blobIDStr := range path {
		handled[meshes.colorOf(b, blobIDStr)] = true
	}
	if topLeftWhole {
		handled[b.At(0)] = true
	}

	var count float64
	for _, c := range colorsPresent {
		if !handled[c] {
			count++
		}
	}
	return count
}

// WeightedHeuristic builds the default, non-admissible heuristic: 10 times
// the admissible heuristic plus a small tiebreak favoring boards whose
// top-left blob already covers more of the board.
// It is empirically fast and near-optimal; it is not a true lower bound,
// so A* runs under it are not guaranteed shortest.
func WeightedHeuristic(start board.Board) (func(board.Board) float64, error) {
	admissible, err := AdmissibleHeuristic(start)
	if err != nil {
		return nil, err
	}

	return func(b board.Board) float64 {
		return 10*admissible(b) + 0.01*float64(b.Len()-b.BlobSize(0))
	}, nil
}

// CornerMeshHeuristic is an optional alternate heuristic: the same three
// per-corner meshes as AdmissibleHeuristic, but scored as half the
// worst-case raw mesh distance to an unabsorbed corner, with no
// unhandled-color or baseline correction. It is not admissible and is not
// the canonical heuristic — AdmissibleHeuristic and WeightedHeuristic are —
// but is kept available for callers who want a cheaper, cruder estimate.
func CornerMeshHeuristic(start board.Board) (func(board.Board) float64, error) {
	meshes, err := newCornerMeshes(start)
	if err != nil {
		return nil, err
	}
	const multiplier = 0.5

	return func(b board.Board) float64 {
		perimeter := b.PerimeterBlocks(0)
		if len(perimeter) == 0 {
			return 0
		}

		testFrom := make(map[uint16]bool)
		for _, p := range perimeter {
			testFrom[meshes.blobifiedStart[p]] = true
		}

		topLeft := make(map[int]bool)
		for _, p := range b.BlobPositions(0) {
			topLeft[p] = true
		}

		var longest float64
		for _, target := range meshes.targets {
			if topLeft[target] {
				continue
			}
			best := math.Inf(1)
			for from := range testFrom {
				path, err := meshes.pathTo(target, from)
				if err != nil {
					continue
				}
				if d := float64(len(path)); d < best {
					best = d
				}
			}
			if !math.IsInf(best, 1) && best > longest {
				longest = best
			}
		}

		return multiplier * longest
	}, nil
}
