//go:build avx512 && !amd64.v4

package avx512

// The avx512 build tag is only valid together with GOARCH=amd64 GOAMD64=v4.
// The undefined identifier below is the build error users see otherwise.
const _ = avx512_build_tag_requires_GOARCH_amd64_and_GOAMD64_v4
