// Package board implements the Flood-It board model: a packed square byte
// grid and the pure queries and transformations the solver needs over it
// (flood fill, blob segmentation, perimeter analysis, and distance
// measures).
//
// A Board is a value type. Every transformation (PlayColor) returns a new
// Board; no method ever mutates the receiver's backing buffer. This mirrors
// the rest of this module's state — board.Board is handed around A* open/
// closed sets and the greedy walker's path exactly the way an immutable key
// would be, and never needs defensive copying by its callers.
//
// Cell coordinates are recovered from a flat position p as
// x = p mod N, y = p / N, where N = Size(). Values are color labels; typical
// play uses at most a handful of colors, but nothing here assumes a color
// count below 256.
//
// AdjacentPositions computes a cell's 4-connected neighbors on each call,
// with bounds checks at the board edges, and Board.BlobGraph converts a board into a blob-adjacency graph whose
// vertices are blob identifiers rather than individual cells — that is the
// graph the solver's navigation meshes (package navmesh) actually need.
package board
