//go:build !myersed_debug

package invariant

// Enabled reports whether precondition checks are compiled in.
const Enabled = false
