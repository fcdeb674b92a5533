package heap

import "errors"

// ErrEmptyHeap is returned by PopPair when the heap holds no entries. This
// indicates a caller bug (popping an empty frontier) — it is never expected
// during normal A* or navmesh operation, since both callers check Len()
// before popping.
var ErrEmptyHeap = errors.New("heap: pop on empty heap")

// Entry is a single (key, value) pair stored in the heap. Duplicate keys
// are permitted; the heap is not stable, so entries with equal keys pop in
// no particular order, which is irrelevant to the correctness of either
// caller.
type Entry[V any] struct {
	Key   float32
	Value V
}
