// Package peq builds pattern-equivalence tables for Myers' bit-parallel
// edit distance.
//
// A Table maps each of the 256 byte values to a register-wide bitmask whose
// bit i is set iff the pattern holds that byte at position i. Tables are
// generic over the register type through the Word capability, so the same
// construction backs both the 64-bit scalar engine and the 512-bit wide one.
//
// Tables are immutable once built and safe to share between goroutines.
package peq
