package peq

import "math/bits"

// Alphabet is a 256-bit set of byte values.
type Alphabet struct {
	bitset [4]uint64
}

// AlphabetOf returns the set of bytes occurring in s.
func AlphabetOf(s []byte) Alphabet {
	var a Alphabet
	for _, c := range s {
		a.add(c)
	}
	return a
}

func (a *Alphabet) add(c byte) {
	a.bitset[c>>6] |= 1 << (c & 63)
}

// Contains reports whether c is in the set.
func (a Alphabet) Contains(c byte) bool {
	return a.bitset[c>>6]&(1<<(c&63)) != 0
}

// Len returns the number of distinct bytes in the set.
func (a Alphabet) Len() int {
	n := 0
	for _, b := range a.bitset {
		n += bits.OnesCount64(b)
	}
	return n
}

// AppendSymbols appends the members of the set to dst in ascending order.
func (a Alphabet) AppendSymbols(dst []byte) []byte {
	for blk, b := range a.bitset {
		for b != 0 {
			lsb := bits.TrailingZeros64(b)
			dst = append(dst, byte(blk<<6+lsb))
			// clear lowest set bit
			b &= b - 1
		}
	}
	return dst
}
