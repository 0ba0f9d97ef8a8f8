// Package invariant holds precondition checks for the bit-index contracts of
// the hot paths. Checks compile to nothing unless the module is built with
// -tags myersed_debug.
package invariant

import "fmt"

// Index panics if i is outside [0, n) in debug builds.
func Index(i, n int, what string) {
	if Enabled && (i < 0 || i >= n) {
		panic(fmt.Sprintf("%s: index %d out of range [0, %d)", what, i, n))
	}
}

// Range panics if i is outside [lo, hi] in debug builds.
func Range(i, lo, hi int, what string) {
	if Enabled && (i < lo || i > hi) {
		panic(fmt.Sprintf("%s: %d out of range [%d, %d]", what, i, lo, hi))
	}
}
