// Package floodit is the root of a Flood-It solver: given a square grid of
// colored cells, find a short sequence of "play this color" moves that
// floods the whole board to one color, starting from the top-left cell.
//
// The solver is built from independent layers, each its own subpackage:
//
//	memo/      — single-slot and bounded-LRU memoization
//	heap/      — generic binary min-heap
//	board/     — the packed-byte board model: flood fill, perimeter, blob graph
//	blobgraph/ — the simple weighted undirected graph board's blobs are built into
//	greedy/    — iterative best-neighbor walk with memoized sub-walks
//	navmesh/   — single-source shortest-path mesh over a blob-adjacency graph
//	astar/     — generic A* with an optional cooperative pause/resume driver
//	floodit/   — heuristics and solver entry points composing the above
//
// Why choose this shape?
//
//   - Pure Go — no cgo, no hidden deps; the search/board logic depends on
//     nothing outside the standard library. The sole third-party module,
//     testify, is used only in tests.
//   - Every layer is independently testable: board has no notion of search,
//     astar has no notion of Flood-It, navmesh has no notion of either.
//   - Functional options throughout (WithXxx constructors over a dedicated
//     Options struct per entry point) instead of ad hoc parameter bags.
//
// Start with package floodit's SolveBoard for the common case: given a
// board.Board, it returns the list of board states from start to a
// uniform-color terminal, inclusive.
package floodit
