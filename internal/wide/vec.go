// Package wide models a 512-bit SIMD register as eight independent 64-bit
// lanes and builds on it the wide-integer emulation Myers' recurrence needs:
// a carry-propagating add, a cross-lane shift, an up-to-bit mask and a
// reduced popcount. Lane operations mirror the AVX-512 instructions of the
// same shape, none of which carry between lanes.
package wide

import "github.com/mhr3/myersed/internal/invariant"

const (
	// Lanes is the number of 64-bit lanes in a Vec512.
	Lanes = 8
	// LaneBits is the width of one lane.
	LaneBits = 64
	// Bits is the width of a Vec512.
	Bits = Lanes * LaneBits
)

// Vec512 is a 512-bit register. Read as one unsigned integer, lane 0 holds
// the least significant 64 bits and lane 7 the most significant.
type Vec512 [Lanes]uint64

var (
	// Zero has every bit clear.
	Zero Vec512
	// One has only bit 0 set.
	One = Vec512{1}
	// AllOnes has every bit set.
	AllOnes = broadcast(^uint64(0))
)

// Width implements peq.Word.
func (Vec512) Width() int { return Bits }

// BitAt returns a register with exactly bit i set. i must be in [0, 512).
func (Vec512) BitAt(i int) Vec512 {
	invariant.Index(i, Bits, "wide: BitAt")
	return maskzSet1(1<<(uint(i)>>6), 1<<(uint(i)&63))
}

func (a Vec512) Or(b Vec512) Vec512 {
	for i := range a {
		a[i] |= b[i]
	}
	return a
}

func (a Vec512) And(b Vec512) Vec512 {
	for i := range a {
		a[i] &= b[i]
	}
	return a
}

func (a Vec512) Xor(b Vec512) Vec512 {
	for i := range a {
		a[i] ^= b[i]
	}
	return a
}

func (a Vec512) Not() Vec512 {
	for i := range a {
		a[i] = ^a[i]
	}
	return a
}
