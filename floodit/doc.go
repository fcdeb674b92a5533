// Package floodit composes packages board, greedy, navmesh, and astar into
// the Flood-It solver: heuristics built from per-corner navigation meshes
// over a board's blob-adjacency graph, and entry points that drive A* (or
// the greedy walker directly) to a uniform-color terminal board.
//
// Nothing in this package talks to blobgraph.Graph, heap.Heap, or memo.LRU
// directly — those are package board's and package navmesh's concern.
// floodit only ever sees board.Board values and the closures the other
// packages hand back.
package floodit
