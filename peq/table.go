package peq

import (
	"github.com/segmentio/asm/ascii"
)

// Table is the pattern-equivalence table of one pattern over register type W.
//
// For a pattern P of length n, At(c) has bit i set iff P[i] == c, for i < n.
// Bits at or above n are always clear. The zero Table is the table of the
// empty pattern.
type Table[W Word[W]] struct {
	eq    [256]W
	n     int
	alpha Alphabet
}

// New builds the table of pattern. It panics with a *LengthError if the
// pattern is longer than the width of W; use it when the length has already
// been validated.
func New[W Word[W]](pattern []byte) *Table[W] {
	t, err := TryNew[W](pattern)
	if err != nil {
		panic(err)
	}
	return t
}

// TryNew builds the table of pattern, or returns a *LengthError if the
// pattern is longer than the width of W.
func TryNew[W Word[W]](pattern []byte) (*Table[W], error) {
	return build[W](pattern)
}

// FromString builds the table of an ASCII pattern. Non-ASCII input is
// rejected with ErrNotASCII before the length is considered.
func FromString[W Word[W]](s string) (*Table[W], error) {
	if !ascii.ValidString(s) {
		return nil, ErrNotASCII
	}
	return build[W](s)
}

func build[W Word[W], S ~string | ~[]byte](pattern S) (*Table[W], error) {
	var w W
	if len(pattern) > w.Width() {
		return nil, &LengthError{Len: len(pattern), Width: w.Width()}
	}

	t := &Table[W]{n: len(pattern)}
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		t.eq[c] = t.eq[c].Or(w.BitAt(i))
		t.alpha.add(c)
	}
	return t, nil
}

// At returns the equality mask of byte c.
func (t *Table[W]) At(c byte) W {
	return t.eq[c]
}

// Len returns the length of the pattern the table was built from.
func (t *Table[W]) Len() int {
	return t.n
}

// IsEmpty reports whether the table was built from an empty pattern.
func (t *Table[W]) IsEmpty() bool {
	return t.n == 0
}

// Width returns the register width in bits, the longest pattern W can hold.
func (t *Table[W]) Width() int {
	var w W
	return w.Width()
}

// Alphabet returns the set of bytes occurring in the pattern.
func (t *Table[W]) Alphabet() Alphabet {
	return t.alpha
}
