package board

import (
	"math/rand"
	"strings"
)

// String renders the board as N lines of N decimal digits separated by a
// single '\n', with no trailing newline. It is only meaningful for boards
// whose colors are all in 0..9; boards using colors >= 10 cannot round-trip
// through Parse and must be passed around as raw bytes (see Bytes).
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b.data) + b.size)
	for y := 0; y < b.size; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.size; x++ {
			sb.WriteByte('0' + b.data[b.Position(x, y)])
		}
	}
	return sb.String()
}

// Parse strips every character that is not an ASCII digit from s and
// builds a Board from the remaining digits, one byte per digit. Returns
// ErrNonSquareLength if the digit count is not a perfect square, or
// ErrEmptyBoard if there are no digits at all.
func Parse(s string) (Board, error) {
	data := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			data = append(data, c-'0')
		}
	}
	return New(data)
}

// Random generates a board per opts (defaults: 14×14, 6 colors). Positions
// 0..colorCount-1 are seeded with one of each color (guaranteeing every
// requested color appears at least once), the remaining positions are
// filled uniformly from [0, colorCount] inclusive, and the whole buffer is
// then shuffled.
//
// The inclusive upper bound on the tail fill is deliberate: it reproduces a
// quirk in the system this package is modeled on, where the tail is filled
// from a range that is one wider than colorCount, occasionally producing a
// board with colorCount+1 distinct colors. See DESIGN.md for why this is
// preserved rather than tightened to [0, colorCount).
//
// Returns ErrBadColorCount if ColorCount < 1, or ErrBoardTooSmall if
// Size*Size < ColorCount.
func Random(opts ...RandomOption) (Board, error) {
	o := DefaultRandomOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.ColorCount < 1 {
		return Board{}, ErrBadColorCount
	}
	length := o.Size * o.Size
	if length < o.ColorCount {
		return Board{}, ErrBoardTooSmall
	}

	data := make([]byte, length)
	for i := 0; i < o.ColorCount; i++ {
		data[i] = byte(i)
	}
	for i := o.ColorCount; i < length; i++ {
		data[i] = byte(rand.Intn(o.ColorCount + 1))
	}
	rand.Shuffle(length, func(i, j int) {
		data[i], data[j] = data[j], data[i]
	})

	return Board{data: data, size: o.Size}, nil
}
