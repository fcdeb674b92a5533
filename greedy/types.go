package greedy

import (
	"errors"
	"fmt"
)

// ErrDeadEnd is returned by Walk when it reaches a non-terminal node with no
// neighbors. Callers that can guarantee this never happens may ignore it;
// this package defines the case explicitly instead of looping or panicking.
var ErrDeadEnd = errors.New("greedy: non-terminal node has no neighbors")

// Options configures a Walker.
type Options[T any] struct {
	// Score ranks neighbors; the walk steps to the neighbor with the
	// highest Score, or the lowest if PreferLower is set. Defaults to the
	// constant 0 (an unscored walk simply takes whichever neighbor
	// iteration happens to visit first).
	Score func(T) float64

	// PreferLower reverses the comparison: the walk steps to the
	// minimum-scoring neighbor instead of the maximum.
	PreferLower bool

	// GetKey derives the memoization key for a node. Defaults to
	// fmt.Sprint(node), which is correct but slow for large composite
	// node types; callers with a cheap natural key (e.g. board.Board's
	// Hash method) should supply one.
	GetKey func(T) string
}

// Option mutates an Options value.
type Option[T any] func(*Options[T])

// DefaultOptions returns a Walker configuration with a constant-zero score,
// ascending preference, and fmt.Sprint as the key function.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		Score:       func(T) float64 { return 0 },
		PreferLower: false,
		GetKey:      func(v T) string { return fmt.Sprint(v) },
	}
}

// WithScore sets the neighbor-ranking function.
func WithScore[T any](score func(T) float64) Option[T] {
	return func(o *Options[T]) { o.Score = score }
}

// WithPreferLower makes the walk step toward the minimum-scoring neighbor.
func WithPreferLower[T any]() Option[T] {
	return func(o *Options[T]) { o.PreferLower = true }
}

// WithGetKey sets the memoization key function.
func WithGetKey[T any](getKey func(T) string) Option[T] {
	return func(o *Options[T]) { o.GetKey = getKey }
}
