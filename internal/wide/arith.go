package wide

import "github.com/mhr3/myersed/internal/invariant"

// Add returns a+b as 512-bit unsigned integers, modulo 2^512.
// It expects at most one carry round; see AddHint.
func (a Vec512) Add(b Vec512) Vec512 {
	return a.AddHint(b, 1)
}

// AddHint returns a+b as 512-bit unsigned integers, modulo 2^512.
//
// The lanes are added independently and every lane that wrapped then passes
// a carry into the lane above it, in rounds, until a round produces no new
// wrap. rounds is the number of rounds the caller expects; those run without
// the exit check. The result does not depend on the hint.
//
// A lane that wrapped on a+b holds at most 2^64-2 and cannot wrap again when
// its carry arrives. Later rounds are only needed when a lane summed to
// exactly 2^64-1 and then received a carry, so a chain of k such lanes needs
// k+1 rounds and no input needs more than Lanes.
func (a Vec512) AddHint(b Vec512, rounds int) Vec512 {
	s := addLanes(a, b)

	for r := 0; r < rounds; r++ {
		// lanes that wrapped since the previous round
		cm := cmpLessMask(s, a)
		a = s
		// carry out of lane 7 falls off the top of the mask
		s = addLanes(s, maskzSet1(cm<<1, 1))
	}

	for {
		cm := cmpLessMask(s, a)
		if cm == 0 {
			return s
		}
		a = s
		s = addLanes(s, maskzSet1(cm<<1, 1))
	}
}

// ShiftLeft returns a<<n as a 512-bit integer, shifting in zeros.
// n must be in [0, 64].
func (a Vec512) ShiftLeft(n uint) Vec512 {
	invariant.Range(int(n), 0, LaneBits, "wide: ShiftLeft")

	s := slliLanes(a, n)

	// bits that left the top of each lane, moved to the bottom of the next
	o := srliLanes(a, LaneBits-n)
	m := alignr(o, Zero, Lanes-1)

	// the low n bits of s are zero, so adding is the same as or-ing
	return addLanes(s, m)
}

// ShiftLeft1 is ShiftLeft(1).
func (a Vec512) ShiftLeft1() Vec512 {
	return a.ShiftLeft(1)
}

// MaskUpTo returns a register with bits [0, i) set and the rest clear.
// i must be in [0, 512].
func MaskUpTo(i int) Vec512 {
	invariant.Range(i, 0, Bits, "wide: MaskUpTo")

	// lane holding bit i; zero when i == 512
	lane := uint8(1) << (uint(i) >> 6)

	// lanes below it are all ones
	m := maskSet1(Zero, lane-1, ^uint64(0))

	return maskSet1(m, lane, 1<<(uint(i)&63)-1)
}

// PopCount returns the number of set bits in a.
func (a Vec512) PopCount() int {
	return int(reduceAdd(popcntLanes(a)))
}
