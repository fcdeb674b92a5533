package board

import "github.com/bgw/flood-it-game/memo"

// posKey composes a board hash with a query position. Keying caches on this
// struct rather than a string concatenation of hash(b)+pos avoids both
// hashing the board twice and the delimiter ambiguity a raw concatenation
// would have if a hash ever contained the same bytes used to separate it
// from the position. See DESIGN.md.
type posKey struct {
	hash string
	pos  int
}

// Cache holds explicitly-scoped memoization for the board queries worth
// caching: Colors, PerimeterBlocks, Perimeter, and PerimeterColors are
// single-slot (they only need to elide back-to-back repeats against the
// same (board, position) pair), and BlobSize uses a 100-entry bounded LRU
// keyed by (board hash, position).
//
// Hash itself is deliberately NOT memoized here: computing it is already
// the cheapest possible O(n) pass over the board (a single string
// conversion), so wrapping it in a cache would spend as much work on the
// cache key as the memo would ever save.
//
// A Cache is owned by its caller and is not safe for concurrent use,
// matching every other piece of mutable state in this module.
type Cache struct {
	colors          *memo.Single[string, []byte]
	perimeterBlocks *memo.Single[posKey, []int]
	perimeter       *memo.Single[posKey, int]
	perimeterColors *memo.Single[posKey, []byte]
	blobSize        *memo.LRU[posKey, int]
}

// NewCache constructs an empty, caller-owned Cache.
func NewCache() *Cache {
	blobSize, _ := memo.NewLRU[posKey, int](100)
	return &Cache{
		colors:          memo.NewSingle[string, []byte](),
		perimeterBlocks: memo.NewSingle[posKey, []int](),
		perimeter:       memo.NewSingle[posKey, int](),
		perimeterColors: memo.NewSingle[posKey, []byte](),
		blobSize:        blobSize,
	}
}

// Colors memoizes b.Colors() against the most recent call.
func (c *Cache) Colors(b Board) []byte {
	return c.colors.GetOrCompute(b.Hash(), b.Colors)
}

// PerimeterBlocks memoizes b.PerimeterBlocks(p) against the most recent
// (board, p) pair.
func (c *Cache) PerimeterBlocks(b Board, p int) []int {
	key := posKey{hash: b.Hash(), pos: p}
	return c.perimeterBlocks.GetOrCompute(key, func() []int { return b.PerimeterBlocks(p) })
}

// Perimeter memoizes b.Perimeter(p) against the most recent (board, p) pair.
func (c *Cache) Perimeter(b Board, p int) int {
	key := posKey{hash: b.Hash(), pos: p}
	return c.perimeter.GetOrCompute(key, func() int { return b.Perimeter(p) })
}

// PerimeterColors memoizes b.PerimeterColors(p) against the most recent
// (board, p) pair.
func (c *Cache) PerimeterColors(b Board, p int) []byte {
	key := posKey{hash: b.Hash(), pos: p}
	return c.perimeterColors.GetOrCompute(key, func() []byte { return b.PerimeterColors(p) })
}

// BlobSize memoizes b.BlobSize(p) in a 100-entry LRU keyed by (board hash, p).
func (c *Cache) BlobSize(b Board, p int) int {
	key := posKey{hash: b.Hash(), pos: p}
	return c.blobSize.GetOrCompute(key, func() int { return b.BlobSize(p) })
}
