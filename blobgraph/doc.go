// Package blobgraph implements the one graph shape this solver ever needs:
// a simple, undirected, non-negatively weighted graph over string vertex
// IDs. It exists because package board's blob-adjacency graph and package
// navmesh's Dijkstra pass never touch directed edges, mixed orientation,
// parallel edges, or self-loops — every mode a general-purpose graph type
// would otherwise carry options for.
//
// A Graph is built once per solve (board.Board.BlobGraph constructs one from
// a board's flood-filled blobs), handed to navmesh.Build, and never mutated
// again. Like this module's other single-owner, single-goroutine structures
// (heap.Heap, memo.Single, memo.LRU), a Graph is not safe for concurrent use.
package blobgraph
