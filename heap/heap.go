package heap

// Heap is a binary min-heap of Entry[V], stored as an array-backed tree:
// the children of index i live at 2i+1 and 2i+2. It is not safe for
// concurrent use; every caller in this module drives one heap from a single
// goroutine at a time.
type Heap[V any] struct {
	entries []Entry[V]
}

// New constructs an empty heap.
func New[V any]() *Heap[V] {
	return &Heap[V]{}
}

// Len reports the number of entries currently in the heap.
func (h *Heap[V]) Len() int {
	return len(h.entries)
}

// Put inserts (key, value) and restores the heap invariant. O(log n).
func (h *Heap[V]) Put(key float32, value V) {
	h.entries = append(h.entries, Entry[V]{Key: key, Value: value})
	h.siftUp(len(h.entries) - 1)
}

// PopPair removes and returns the minimum-key entry. O(log n).
// Returns ErrEmptyHeap if the heap is empty.
func (h *Heap[V]) PopPair() (float32, V, error) {
	if len(h.entries) == 0 {
		var zero V
		return 0, zero, ErrEmptyHeap
	}

	root := h.entries[0]
	last := len(h.entries) - 1
	h.entries[0] = h.entries[last]
	h.entries = h.entries[:last]
	if len(h.entries) > 0 {
		h.siftDown(0)
	}

	return root.Key, root.Value, nil
}

// siftUp moves the entry at i toward the root while it is smaller than its
// parent. Parents are compared with >=, so equal keys stop sifting — this
// keeps newly-inserted duplicates near the tail rather than churning the
// whole tree, without affecting correctness (ties are resolved arbitrarily
// and both callers are indifferent to tie order).
func (h *Heap[V]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.entries[parent].Key <= h.entries[i].Key {
			break
		}
		h.entries[parent], h.entries[i] = h.entries[i], h.entries[parent]
		i = parent
	}
}

// siftDown moves the entry at i toward the leaves, always swapping with the
// smaller child; on a tie between children, the left child is preferred.
func (h *Heap[V]) siftDown(i int) {
	n := len(h.entries)
	for {
		left := 2*i + 1
		right := 2*i + 2
		smallest := i

		if left < n && h.entries[left].Key < h.entries[smallest].Key {
			smallest = left
		}
		if right < n && h.entries[right].Key < h.entries[smallest].Key {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.entries[i], h.entries[smallest] = h.entries[smallest], h.entries[i]
		i = smallest
	}
}
