// Package scalar computes edit distance with Myers' bit-parallel algorithm
// over a native 64-bit word.
//
// The pattern must fit in one word (at most 64 bytes); the text can be any
// length. The distance is computed in one left-to-right pass over the text
// with a constant number of word operations per byte.
package scalar

import (
	"math/bits"

	"github.com/mhr3/myersed/peq"
)

// Width is the longest pattern, in bytes, the scalar engine accepts.
const Width = peq.Word64Bits

// Peq is a pattern-equivalence table for the scalar engine.
type Peq = peq.Table[peq.Word64]

// NewPeq builds the table of pattern for reuse across many texts.
// It panics with a *peq.LengthError if len(pattern) > Width.
func NewPeq(pattern []byte) *Peq {
	return peq.New[peq.Word64](pattern)
}

// EditDistance returns the Levenshtein distance between a and b.
// It panics if len(a) > Width; use TryEditDistance for untrusted input.
func EditDistance(a, b []byte) int {
	return EditDistanceWithPeq(peq.New[peq.Word64](a), b)
}

// TryEditDistance is like EditDistance but returns an error matching
// peq.ErrPatternTooLong instead of panicking when len(a) > Width.
func TryEditDistance(a, b []byte) (int, error) {
	t, err := peq.TryNew[peq.Word64](a)
	if err != nil {
		return 0, err
	}
	return EditDistanceWithPeq(t, b), nil
}

// EditDistanceWithPeq returns the Levenshtein distance between the pattern
// t was built from and b.
func EditDistanceWithPeq(t *Peq, b []byte) int {
	// vertical deltas of the current column: +1 and -1
	vp := ^uint64(0)
	vn := uint64(0)

	for _, x := range b {
		eq := uint64(t.At(x))

		// diagonal zero delta
		d0 := (((eq & vp) + vp) ^ vp) | eq

		// horizontal deltas
		hp := vn | ^(vp | d0)
		hn := vp & d0

		xh := eq | vn

		// move one column right; row 0 always increases
		hp = hp<<1 | 1

		vp = hn<<1 | ^(xh | hp)
		vn = hp & xh
	}

	// 1<<64 is 0 for uint64, so a full-width pattern wraps to all ones.
	m := uint64(1)<<uint(t.Len()) - 1

	return len(b) + bits.OnesCount64(vp&m) - bits.OnesCount64(vn&m)
}
