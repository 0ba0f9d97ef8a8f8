//go:build avx512

// Package avx512 computes edit distance with Myers' bit-parallel algorithm
// over a 512-bit register, for patterns of up to 512 bytes.
//
// The package only exists in builds that opt in with -tags avx512, and such
// builds must target GOARCH=amd64 GOAMD64=v4; any other combination fails to
// compile. At startup the package also refuses to run on a CPU without
// AVX-512F and VPOPCNTDQ. There is no silent fallback to the scalar engine:
// callers that want one select package scalar themselves.
package avx512
