package board

import (
	"math"
)

// Board is an immutable N×N grid of color labels packed into a flat byte
// buffer of length N². Position p encodes (x = p mod N, y = p / N).
type Board struct {
	data []byte
	size int
}

// New wraps data as a Board. data is defensively copied, so the caller's
// slice may be reused or mutated afterward without affecting the Board.
// Returns ErrEmptyBoard if data is empty, or ErrNonSquareLength if
// len(data) is not a perfect square.
func New(data []byte) (Board, error) {
	if len(data) == 0 {
		return Board{}, ErrEmptyBoard
	}
	n := intSqrt(len(data))
	if n*n != len(data) {
		return Board{}, ErrNonSquareLength
	}

	buf := make([]byte, len(data))
	copy(buf, data)

	return Board{data: buf, size: n}, nil
}

// intSqrt returns floor(sqrt(n)) for n >= 0 using integer arithmetic only,
// rounded against floating-point error at the boundary.
func intSqrt(n int) int {
	root := int(math.Sqrt(float64(n)))
	for root*root > n {
		root--
	}
	for (root+1)*(root+1) <= n {
		root++
	}
	return root
}

// Size returns N, the side length of the board.
func (b Board) Size() int {
	return b.size
}

// Len returns N², the number of cells.
func (b Board) Len() int {
	return len(b.data)
}

// At returns the color at flat position p.
func (b Board) At(p int) byte {
	return b.data[p]
}

// Position returns the flat index of cell (x, y).
func (b Board) Position(x, y int) int {
	return x + y*b.size
}

// Coord returns the (x, y) coordinate of flat position p.
func (b Board) Coord(p int) (x, y int) {
	return p % b.size, p / b.size
}

// Bytes returns a defensive copy of the underlying buffer.
func (b Board) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Equal reports whether two boards have identical dimensions and content.
func (b Board) Equal(other Board) bool {
	if b.size != other.size || len(b.data) != len(other.data) {
		return false
	}
	for i := range b.data {
		if b.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Hash returns a deterministic, collision-free (for a fixed length) string
// fingerprint of the board: the raw bytes reinterpreted as a string, one
// code unit per cell. Two boards of equal length hash equal iff they are
// byte-for-byte identical.
func (b Board) Hash() string {
	return string(b.data)
}

// AdjacentPositions returns the 4-connected neighbors of p that lie on the
// board, in left, right, up, down order. Corners have 2, edges have 3,
// interior cells have 4.
func (b Board) AdjacentPositions(p int) []int {
	x, y := b.Coord(p)
	out := make([]int, 0, 4)
	if x > 0 {
		out = append(out, p-1)
	}
	if x < b.size-1 {
		out = append(out, p+1)
	}
	if y > 0 {
		out = append(out, p-b.size)
	}
	if y < b.size-1 {
		out = append(out, p+b.size)
	}
	return out
}

// Distance returns the Manhattan distance between positions a and q.
func (b Board) Distance(a, q int) int {
	ax, ay := b.Coord(a)
	qx, qy := b.Coord(q)
	return absInt(ax-qx) + absInt(ay-qy)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// BlobPositions returns every position 4-connected to p that shares
// b.At(p)'s color, via an iterative flood fill (explicit stack — no
// recursion, so board size is bounded only by available memory, not stack
// depth).
func (b Board) BlobPositions(p int) []int {
	color := b.data[p]
	seen := make(map[int]bool)
	seen[p] = true
	out := []int{p}
	stack := []int{p}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range b.AdjacentPositions(cur) {
			if seen[n] || b.data[n] != color {
				continue
			}
			seen[n] = true
			out = append(out, n)
			stack = append(stack, n)
		}
	}

	return out
}

// BlobSize returns the number of cells in the blob containing p.
func (b Board) BlobSize(p int) int {
	return len(b.BlobPositions(p))
}

// BlobIsWhole reports whether no cell outside the blob at p carries that
// blob's color — i.e. the color has been fully absorbed into one blob.
func (b Board) BlobIsWhole(p int) bool {
	color := b.data[p]
	blobSize := b.BlobSize(p)

	total := 0
	for _, c := range b.data {
		if c == color {
			total++
		}
	}

	return total == blobSize
}

// BlobDistance returns the minimum Manhattan distance between any cell of
// the blob at a and any cell of the blob at q. It is 0 iff a and q lie in
// the same blob.
func (b Board) BlobDistance(a, q int) int {
	blobA := b.BlobPositions(a)
	blobQSet := make(map[int]bool, len(blobA))
	for _, p := range b.BlobPositions(q) {
		blobQSet[p] = true
	}
	for _, p := range blobA {
		if blobQSet[p] {
			return 0
		}
	}

	best := math.MaxInt32
	for _, alpha := range blobA {
		for beta := range blobQSet {
			if d := b.Distance(alpha, beta); d < best {
				best = d
			}
		}
	}
	return best
}

// PlayColor returns a new Board in which the blob at position 0 has been
// recolored to c and has absorbed every adjacent cell that already carried
// c. If b.At(0) == c, b is returned unchanged (no new allocation beyond the
// value copy already implied by Go's value semantics).
func (b Board) PlayColor(c byte) Board {
	if b.data[0] == c {
		return b
	}

	buf := make([]byte, len(b.data))
	copy(buf, b.data)
	for _, p := range b.BlobPositions(0) {
		buf[p] = c
	}

	return Board{data: buf, size: b.size}
}

// PerimeterBlocks returns the deduplicated set of positions adjacent to the
// blob at p but outside it (i.e. not sharing b.At(p)'s color).
func (b Board) PerimeterBlocks(p int) []int {
	color := b.data[p]
	blob := b.BlobPositions(p)
	seen := make(map[int]bool, len(blob))
	for _, bp := range blob {
		seen[bp] = true
	}

	var out []int
	added := make(map[int]bool)
	for _, bp := range blob {
		for _, n := range b.AdjacentPositions(bp) {
			if seen[n] || added[n] {
				continue
			}
			if b.data[n] == color {
				// Shouldn't happen (n would be part of the blob), but
				// guard defensively against a malformed seen set.
				continue
			}
			added[n] = true
			out = append(out, n)
		}
	}

	return out
}

// Perimeter returns len(PerimeterBlocks(p)).
func (b Board) Perimeter(p int) int {
	return len(b.PerimeterBlocks(p))
}

// PerimeterColors returns the distinct colors present among the perimeter
// blocks of the blob at p, in first-seen order.
func (b Board) PerimeterColors(p int) []byte {
	var out []byte
	seen := make(map[byte]bool)
	for _, pos := range b.PerimeterBlocks(p) {
		c := b.data[pos]
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Colors returns the deduplicated set of colors present on the board, in
// first-seen scan order.
func (b Board) Colors() []byte {
	var out []byte
	seen := make(map[byte]bool)
	for _, c := range b.data {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// NeighborBoards returns, for each distinct perimeter color of the blob at
// position 0, the board produced by playing that color. If any such board
// makes the new blob at 0 whole (its color has been fully absorbed), the
// returned slice contains only that one board — further moves on an
// already-absorbed color are never useful, so there is no reason to offer
// the others as A* neighbors.
func (b Board) NeighborBoards() []Board {
	colors := b.PerimeterColors(0)
	out := make([]Board, 0, len(colors))
	for _, c := range colors {
		next := b.PlayColor(c)
		if next.BlobIsWhole(0) {
			return []Board{next}
		}
		out = append(out, next)
	}
	return out
}
