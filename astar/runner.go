package astar

import (
	"fmt"

	"github.com/bgw/flood-it-game/heap"
)

// runner holds the mutable state of one A* search: a struct gathering the
// graph-shaped callbacks, the options, and the per-node bookkeeping, with
// the loop body factored into a single step method, since both Search and
// the cooperative driver need to run one iteration at a time.
type runner[N any] struct {
	isEnd     func(N) bool
	neighbors func(N) []N
	distance  func(N, N) float64
	opts      Options[N]

	gCost    map[string]float64
	cameFrom map[string]N
	open     map[string]bool
	closed   map[string]bool
	frontier *heap.Heap[N]
}

func newRunner[N any](start N, isEnd func(N) bool, neighbors func(N) []N, distance func(N, N) float64, opts ...Option[N]) *runner[N] {
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	r := &runner[N]{
		isEnd:     isEnd,
		neighbors: neighbors,
		distance:  distance,
		opts:      o,
		gCost:     map[string]float64{},
		cameFrom:  map[string]N{},
		open:      map[string]bool{},
		closed:    map[string]bool{},
		frontier:  heap.New[N](),
	}

	startKey := o.GetKey(start)
	r.gCost[startKey] = 0
	r.open[startKey] = true
	r.frontier.Put(float32(o.Heuristic(start)), start)

	return r
}

// step performs a single pop-and-expand iteration. done is true once the
// search has concluded, successfully or not; path and err are only
// meaningful when done is true.
func (r *runner[N]) step() (done bool, path []N, err error) {
	if r.frontier.Len() == 0 {
		return true, nil, ErrNoPathFound
	}

	f, node, err := r.frontier.PopPair()
	if err != nil {
		return true, nil, fmt.Errorf("astar: %w", err)
	}
	key := r.opts.GetKey(node)

	// Stale entry: this node's best-known f-cost has already been
	// finalized (it left the open set when it was closed, or a better
	// push superseded it). Skip and keep draining the heap.
	if r.closed[key] || !r.open[key] {
		return false, nil, nil
	}

	if r.isEnd(node) {
		return true, r.reconstructPath(node), nil
	}

	if r.opts.FastSolver != nil {
		if cost, tail, ok := r.opts.FastSolver(node); ok {
			currentFCost := float64(f)
			if cost <= currentFCost-r.gCost[key]+epsilon {
				soFar := r.reconstructPath(node)
				return true, append(soFar[:len(soFar)-1], tail...), nil
			}
		}
	}

	delete(r.open, key)
	r.closed[key] = true

	for _, neighbor := range r.neighbors(node) {
		nKey := r.opts.GetKey(neighbor)
		if r.closed[nKey] {
			continue
		}

		candidateG := r.gCost[key] + r.distance(node, neighbor)
		existingG, seen := r.gCost[nKey]
		if seen && candidateG > existingG {
			continue
		}

		fCost := candidateG + r.opts.Heuristic(neighbor)
		if fCost > r.opts.MaxFCost {
			continue
		}

		r.cameFrom[nKey] = node
		r.gCost[nKey] = candidateG
		r.open[nKey] = true
		r.frontier.Put(float32(fCost), neighbor)
	}

	return false, nil, nil
}

// reconstructPath walks cameFrom backward from node to the search's start
// (the first node with no recorded predecessor) and returns the path in
// forward order, inclusive of both endpoints.
func (r *runner[N]) reconstructPath(node N) []N {
	path := []N{node}
	key := r.opts.GetKey(node)

	for {
		prev, ok := r.cameFrom[key]
		if !ok {
			break
		}
		path = append(path, prev)
		key = r.opts.GetKey(prev)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
