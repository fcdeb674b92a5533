package greedy

import "github.com/bgw/flood-it-game/memo"

// memoCapacity is the bounded-LRU capacity used for the sub-walk memo.
const memoCapacity = 1000

// Walker drives repeated greedy walks over the same node/neighbor/score
// functions, memoizing whole sub-walks across calls to Walk.
type Walker[T any] struct {
	isEnd     func(T) bool
	neighbors func(T) []T
	opts      Options[T]
	cache     *memo.LRU[string, walkResult[T]]
}

type walkResult[T any] struct {
	path []T
	err  error
}

// New constructs a Walker. isEnd reports whether a node is terminal;
// neighbors enumerates a node's outgoing steps.
func New[T any](isEnd func(T) bool, neighbors func(T) []T, opts ...Option[T]) *Walker[T] {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	cache, _ := memo.NewLRU[string, walkResult[T]](memoCapacity)

	return &Walker[T]{
		isEnd:     isEnd,
		neighbors: neighbors,
		opts:      o,
		cache:     cache,
	}
}

// Walk produces [start, next, next, ..., end] by repeatedly stepping to the
// best-scoring neighbor until isEnd holds. The whole walk from start (keyed
// by GetKey(start)) is cached, as is the sub-walk from every node it passes
// through, so a later walk from or through an equal node returns the
// memoized remainder without re-deriving it.
func (w *Walker[T]) Walk(start T) ([]T, error) {
	res := w.cache.GetOrCompute(w.opts.GetKey(start), func() walkResult[T] {
		return walkResult[T]{path: nil, err: nil}.fill(w, start)
	})
	return res.path, res.err
}

// fill computes the actual walk: one step to the best-scoring neighbor, then
// the rest through Walk, so the sub-walk from that neighbor is looked up in
// and stored into the cache. Factored out of Walk so the cache closure stays
// a one-liner.
func (r walkResult[T]) fill(w *Walker[T], start T) walkResult[T] {
	if w.isEnd(start) {
		return walkResult[T]{path: []T{start}, err: nil}
	}

	next := w.neighbors(start)
	if len(next) == 0 {
		return walkResult[T]{path: []T{start}, err: ErrDeadEnd}
	}

	best := next[0]
	bestScore := w.opts.Score(best)
	for _, n := range next[1:] {
		s := w.opts.Score(n)
		if w.opts.PreferLower && s < bestScore || !w.opts.PreferLower && s > bestScore {
			best = n
			bestScore = s
		}
	}

	rest, err := w.Walk(best)
	return walkResult[T]{path: append([]T{start}, rest...), err: err}
}
