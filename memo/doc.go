// Package memo provides small, explicitly-scoped caches for memoizing
// expensive pure functions keyed by a derived value.
//
// Two shapes are provided:
//
//   - LRU: a bounded cache holding up to N distinct keys, used when a
//     function is called with a rotating but bounded set of arguments
//     (e.g. board queries keyed by board hash).
//   - Single: a one-entry cache that elides a recomputation only when the
//     very next call repeats the previous key, used to collapse back-to-back
//     duplicate calls (e.g. querying the same board's colors twice in a row).
//
// Both are owned by the caller: nothing in this package is a package-level
// singleton. A caller that wants a process-wide cache constructs one at
// startup and threads it through; a caller that wants a search-scoped cache
// constructs a fresh one per search. Neither type is safe for concurrent
// use — callers are expected to be single-threaded, matching every consumer
// in this module (board queries, the greedy walker, and A*'s heuristic
// evaluation all run on one goroutine at a time).
//
// Eviction policy (LRU): recency is updated only on insertion, not on read.
// A key that is read repeatedly without ever being re-inserted will still
// age out once N other distinct keys have been inserted after it. This
// mirrors the eviction policy of the system this package was modeled after;
// see DESIGN.md for the rationale.
package memo
