// Package astar implements a generic A* search over any node type with
// user-supplied heuristic, neighbor, and distance functions, driven through
// an options-struct-plus-functional-options entry point, generalized to
// arbitrary K/N closures instead of any single graph type, and extended
// with an optional fast-solver shortcut and a cooperative pause/resume
// driver.
//
// Blocking mode (Search) runs to completion and returns the winning path.
// Cooperative mode (SearchAsync) runs the same algorithm in bursts of
// AsyncBlockSize iterations, yielding between bursts and delivering the
// final result through Options.Callback instead of a return value; the
// driver owns its own scheduling rather than reacting to an externally
// cancelled context.
//
// The open set is a lazy-decrease-key heap.Heap: a better f-cost for an
// already-open node is pushed as a fresh entry rather than updating the
// existing one, and a popped entry whose node is no longer in the open set
// (it has been closed since) is discarded as stale.
package astar
