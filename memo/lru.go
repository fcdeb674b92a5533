package memo

import "container/list"

// LRU bounds a cache to at most Capacity distinct keys, evicting the
// least-recently-INSERTED key once that bound is exceeded. Reads of an
// already-cached key do not touch the eviction order; only a fresh
// GetOrCompute for a key not currently present counts as an insertion.
//
// This is a bounded LRU memo: capacity N, a key function, and a target
// function. Here the key function is the caller's responsibility (the
// caller passes the derived key directly rather than raw arguments), and
// the target function is the thunk passed to GetOrCompute.
type LRU[K comparable, V any] struct {
	capacity int
	order    *list.List            // front = oldest insertion, back = newest
	elems    map[K]*list.Element   // key -> node in order, node.Value is *entry[K,V]
}

type entry[K comparable, V any] struct {
	key K
	val V
}

// NewLRU constructs an LRU memo bounded to capacity distinct keys.
// Returns ErrBadCapacity if capacity < 1.
func NewLRU[K comparable, V any](capacity int) (*LRU[K, V], error) {
	if capacity < 1 {
		return nil, ErrBadCapacity
	}

	return &LRU[K, V]{
		capacity: capacity,
		order:    list.New(),
		elems:    make(map[K]*list.Element, capacity),
	}, nil
}

// GetOrCompute returns the cached value for key if key was one of the last
// (at most) Capacity distinct keys inserted; otherwise it calls compute,
// stores the result under key, and evicts the oldest insertion if the cache
// is now over capacity.
func (c *LRU[K, V]) GetOrCompute(key K, compute func() V) V {
	if el, ok := c.elems[key]; ok {
		return el.Value.(*entry[K, V]).val
	}

	val := compute()
	el := c.order.PushBack(&entry[K, V]{key: key, val: val})
	c.elems[key] = el

	if c.order.Len() > c.capacity {
		oldest := c.order.Front()
		c.order.Remove(oldest)
		delete(c.elems, oldest.Value.(*entry[K, V]).key)
	}

	return val
}

// Len reports the number of distinct keys currently cached.
func (c *LRU[K, V]) Len() int {
	return c.order.Len()
}
