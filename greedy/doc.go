// Package greedy implements a best-neighbor walk: starting from
// a node, repeatedly step to whichever neighbor scores best (highest by
// default, lowest if PreferLower is set) until a terminal node is reached.
//
// The walk is memoized: a Walker owns a bounded LRU (capacity 1000, see
// package memo) keyed by GetKey(node), so that a sub-walk computed once from
// some intermediate node is reused verbatim the next time the walk passes
// through an equal node. This is what lets package floodit drive A*'s
// fast-solver shortcut from a Walker — the same greedy walk used standalone
// as floodit.SolveBoardGreedy is cheap enough, once memoized, to re-run from
// every A* expansion without dominating the search.
//
// The walker assumes every non-terminal node offered to Walk has at least
// one neighbor. Flood-It boards always satisfy this (a non-uniform board's
// top-left blob always has a perimeter to play into), but to keep the
// contract total rather than undefined, a node with no neighbors is treated
// as a dead end: Walk returns the path gathered so far along with
// ErrDeadEnd, rather than looping or panicking.
package greedy
