//go:build avx512

package avx512

import (
	"golang.org/x/sys/cpu"

	"github.com/mhr3/myersed/internal/wide"
	"github.com/mhr3/myersed/peq"
)

var (
	hasAVX512F         = cpu.X86.HasAVX512F
	hasAVX512VPOPCNTDQ = cpu.X86.HasAVX512VPOPCNTDQ
)

func init() {
	if !hasAVX512F || !hasAVX512VPOPCNTDQ {
		panic("avx512: CPU lacks AVX-512F or AVX512-VPOPCNTDQ; build without -tags avx512")
	}
}

// Width is the longest pattern, in bytes, the wide engine accepts.
const Width = wide.Bits

// Word is the 512-bit register type backing the tables of this package.
type Word = wide.Vec512

// Peq is a pattern-equivalence table for the wide engine.
type Peq = peq.Table[Word]

// NewPeq builds the table of pattern for reuse across many texts.
// It panics with a *peq.LengthError if len(pattern) > Width.
func NewPeq(pattern []byte) *Peq {
	return peq.New[Word](pattern)
}

// EditDistance returns the Levenshtein distance between a and b.
// It panics if len(a) > Width; use TryEditDistance for untrusted input.
func EditDistance(a, b []byte) int {
	return wide.Distance(peq.New[Word](a), b)
}

// TryEditDistance is like EditDistance but returns an error matching
// peq.ErrPatternTooLong instead of panicking when len(a) > Width.
func TryEditDistance(a, b []byte) (int, error) {
	t, err := peq.TryNew[Word](a)
	if err != nil {
		return 0, err
	}
	return wide.Distance(t, b), nil
}

// EditDistanceWithPeq returns the Levenshtein distance between the pattern
// t was built from and b.
func EditDistanceWithPeq(t *Peq, b []byte) int {
	return wide.Distance(t, b)
}
