package wide

import "math/bits"

// Per-lane operations. Each one corresponds to a single AVX-512 instruction
// and, like the hardware, never moves bits between lanes. Masks use bit i
// for lane i.

// broadcast is _mm512_set1_epi64.
func broadcast(x uint64) Vec512 {
	var v Vec512
	for i := range v {
		v[i] = x
	}
	return v
}

// maskSet1 is _mm512_mask_set1_epi64: lanes selected by k are set to x,
// the others are copied from src.
func maskSet1(src Vec512, k uint8, x uint64) Vec512 {
	for i := range src {
		if k&(1<<i) != 0 {
			src[i] = x
		}
	}
	return src
}

// maskzSet1 is _mm512_maskz_set1_epi64.
func maskzSet1(k uint8, x uint64) Vec512 {
	return maskSet1(Zero, k, x)
}

// addLanes is _mm512_add_epi64; each lane wraps independently.
func addLanes(a, b Vec512) Vec512 {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

// cmpLessMask is _mm512_cmp_epu64_mask with _MM_CMPINT_LT.
func cmpLessMask(a, b Vec512) uint8 {
	var k uint8
	for i := range a {
		if a[i] < b[i] {
			k |= 1 << i
		}
	}
	return k
}

// slliLanes is _mm512_slli_epi64. Counts above 63 clear the lane.
func slliLanes(a Vec512, n uint) Vec512 {
	for i := range a {
		a[i] <<= n
	}
	return a
}

// srliLanes is _mm512_srli_epi64. Counts above 63 clear the lane.
func srliLanes(a Vec512, n uint) Vec512 {
	for i := range a {
		a[i] >>= n
	}
	return a
}

// alignr is _mm512_alignr_epi64: the 16-lane concatenation hi:lo shifted
// down by imm lanes, keeping the low eight.
func alignr(hi, lo Vec512, imm int) Vec512 {
	var cat [2 * Lanes]uint64
	copy(cat[:Lanes], lo[:])
	copy(cat[Lanes:], hi[:])

	var v Vec512
	copy(v[:], cat[imm&(Lanes-1):])
	return v
}

// popcntLanes is _mm512_popcnt_epi64.
func popcntLanes(a Vec512) Vec512 {
	for i := range a {
		a[i] = uint64(bits.OnesCount64(a[i]))
	}
	return a
}

// reduceAdd is _mm512_reduce_add_epi64.
func reduceAdd(a Vec512) uint64 {
	var s uint64
	for _, x := range a {
		s += x
	}
	return s
}
