package levenshtein

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "ABC", 3},
		{"ABC", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"ACCCT", "ACCTT", 1},
		{"AATTC", "AATTCA", 1},
		{"GATCAATGACTG", "GATCAATAACTG", 1},
		{"abc", "abc", 0},
		{"abc", "xyz", 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Distance([]byte(tt.a), []byte(tt.b)), "Distance(%q, %q)", tt.a, tt.b)
		assert.Equal(t, tt.want, Distance([]byte(tt.b), []byte(tt.a)), "Distance(%q, %q)", tt.b, tt.a)
	}
}

func TestMutate(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for _, kind := range []EditKind{Substitute, Insert, Delete} {
		for k := 0; k <= 8; k++ {
			s := RandomSequence(rnd, 24, "ACGT")
			m := Mutate(rnd, s, kind, k, "xyz")
			assert.Equal(t, k, Distance(s, m), "kind %d k %d: %q -> %q", kind, k, s, m)
			switch kind {
			case Insert:
				assert.Len(t, m, len(s)+k)
			case Delete:
				assert.Len(t, m, len(s)-k)
			default:
				assert.Len(t, m, len(s))
			}
		}
	}
}
