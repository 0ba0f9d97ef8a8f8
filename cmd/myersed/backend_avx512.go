//go:build avx512

package main

import "github.com/mhr3/myersed/avx512"

func init() {
	register(newBackend[avx512.Word]("avx512", avx512.EditDistanceWithPeq))
}
