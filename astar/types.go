package astar

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoPathFound is returned when the open set empties before isEnd is
// satisfied for any expanded node.
var ErrNoPathFound = errors.New("astar: no path found")

// epsilon is the fast-solver firing tolerance: a FastSolver result fires
// when its cost exceeds the gap between the popped node's f-cost and its
// g-cost by at most epsilon.
const epsilon = 1e-5

// Options configures a Search or SearchAsync call.
type Options[N any] struct {
	// Heuristic estimates remaining cost from a node to the goal. Must be
	// non-negative; admissibility (never overestimating) is the caller's
	// responsibility, not enforced here. Defaults to the constant 0, which
	// degrades A* to Dijkstra.
	Heuristic func(N) float64

	// GetKey derives a node's identity for the open/closed sets and the
	// g-cost/predecessor maps. Defaults to fmt.Sprint(node), matching
	// package greedy's default — true structural identity requires a
	// caller-supplied key for any node type where that's lossy.
	GetKey func(N) string

	// MaxFCost prunes any node whose tentative f-cost exceeds it. Defaults
	// to +Inf (no pruning).
	MaxFCost float64

	// Callback receives SearchAsync's final path or error; SearchAsync
	// substitutes a no-op when it is unset. Search (blocking mode) ignores it.
	Callback func([]N, error)

	// AsyncBlockSize is the number of algorithm iterations a cooperative
	// burst runs before yielding. Defaults to 100. Ignored by Search.
	AsyncBlockSize int

	// FastSolver, given the node just popped off the open set, may report
	// a cheaper known continuation to the goal. When cost is at most
	// (poppedFCost - gCost[node]) + epsilon, path is spliced onto the
	// path reconstructed so far and returned as the final solution. path
	// is expected to start at node itself, matching package greedy's
	// Walker.Walk contract — FastSolver is meant to be backed by a Walker.
	FastSolver func(N) (cost float64, path []N, ok bool)
}

// Option mutates an Options value.
type Option[N any] func(*Options[N])

// DefaultOptions returns a zero-heuristic, identity-by-fmt.Sprint, unbounded
// search configuration with an asyncBlockSize of 100.
func DefaultOptions[N any]() Options[N] {
	return Options[N]{
		Heuristic:      func(N) float64 { return 0 },
		GetKey:         func(n N) string { return fmt.Sprint(n) },
		MaxFCost:       math.Inf(1),
		AsyncBlockSize: 100,
	}
}

// WithHeuristic sets the remaining-cost estimator.
func WithHeuristic[N any](heuristic func(N) float64) Option[N] {
	return func(o *Options[N]) { o.Heuristic = heuristic }
}

// WithGetKey sets the node-identity function.
func WithGetKey[N any](getKey func(N) string) Option[N] {
	return func(o *Options[N]) { o.GetKey = getKey }
}

// WithMaxFCost sets the f-cost pruning threshold. Panics if max < 0 — a
// negative bound is a programmer error, not a runtime data error.
func WithMaxFCost[N any](max float64) Option[N] {
	if max < 0 {
		panic("astar: MaxFCost must be non-negative")
	}
	return func(o *Options[N]) { o.MaxFCost = max }
}

// WithCallback sets the cooperative-mode result callback.
func WithCallback[N any](callback func([]N, error)) Option[N] {
	return func(o *Options[N]) { o.Callback = callback }
}

// WithAsyncBlockSize sets the cooperative burst size. Panics if size < 1.
func WithAsyncBlockSize[N any](size int) Option[N] {
	if size < 1 {
		panic("astar: AsyncBlockSize must be >= 1")
	}
	return func(o *Options[N]) { o.AsyncBlockSize = size }
}

// WithFastSolver sets the per-expansion shortcut hook.
func WithFastSolver[N any](fastSolver func(N) (cost float64, path []N, ok bool)) Option[N] {
	return func(o *Options[N]) { o.FastSolver = fastSolver }
}
