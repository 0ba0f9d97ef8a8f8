package main

import (
	"sort"

	"github.com/mhr3/myersed/peq"
	"github.com/mhr3/myersed/scalar"
)

const defaultBackend = "scalar"

// distFunc is the distance from a fixed pattern to text.
type distFunc func(text []byte) int

type backend struct {
	name  string
	width int
	build func(pattern string, asciiOnly bool) (distFunc, error)
}

var backends = map[string]backend{}

func register(b backend) {
	backends[b.name] = b
}

func backendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newBackend[W peq.Word[W]](name string, run func(*peq.Table[W], []byte) int) backend {
	var w W
	return backend{
		name:  name,
		width: w.Width(),
		build: func(pattern string, asciiOnly bool) (distFunc, error) {
			var (
				t   *peq.Table[W]
				err error
			)
			if asciiOnly {
				t, err = peq.FromString[W](pattern)
			} else {
				t, err = peq.TryNew[W]([]byte(pattern))
			}
			if err != nil {
				return nil, err
			}
			return func(text []byte) int { return run(t, text) }, nil
		},
	}
}

func init() {
	register(newBackend[peq.Word64]("scalar", scalar.EditDistanceWithPeq))
}
