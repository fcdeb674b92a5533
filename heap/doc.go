// Package heap implements a generic binary min-heap of (key, value) pairs.
//
// It backs two callers in this module: A*'s f-cost frontier (package astar)
// and the navigation mesh's Dijkstra relaxation loop (package navmesh). Both
// callers use a "lazy decrease-key" pattern — when a better key for some
// value's identity is found, they Put a fresh entry rather than mutating an
// existing one, and discard any popped entry that no longer matches their
// own bookkeeping (the open set, or the visited set). Consequently this
// heap permits duplicate keys and never needs a Fix/Update operation — a
// lazy-decrease-key discipline wrapped in an explicit Put/PopPair contract
// with a generic payload type instead of a bespoke per-caller heap item.
package heap
