package peq

import "github.com/mhr3/myersed/internal/invariant"

// Word is the capability a fixed-width register type needs to back a Table.
// The zero value of W must have every bit clear.
type Word[W any] interface {
	comparable

	// Width returns the number of bits in W, independent of the receiver.
	Width() int

	// BitAt returns a value with exactly bit i set.
	// i must be in [0, Width()); this is only checked in debug builds.
	BitAt(i int) W

	// Or returns the bitwise OR of the receiver and w.
	Or(w W) W
}

// Word64 is the native 64-bit machine word.
type Word64 uint64

// Word64Bits is the width of Word64.
const Word64Bits = 64

func (Word64) Width() int { return Word64Bits }

func (Word64) BitAt(i int) Word64 {
	invariant.Index(i, Word64Bits, "peq: Word64.BitAt")
	return 1 << uint(i)
}

func (w Word64) Or(v Word64) Word64 { return w | v }
