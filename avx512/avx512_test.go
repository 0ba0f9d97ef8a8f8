//go:build avx512

package avx512

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/myersed/internal/levenshtein"
	"github.com/mhr3/myersed/peq"
	"github.com/mhr3/myersed/scalar"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"ACCCT", "ACCTT", 1},
		{"AATTC", "AATTCA", 1},
		{"GATCAATGACTG", "GATCAATAACTG", 1},
		{"", "ABC", 3},
		{"ABC", "", 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EditDistance([]byte(tt.a), []byte(tt.b)), "EditDistance(%q, %q)", tt.a, tt.b)

		d, err := TryEditDistance([]byte(tt.a), []byte(tt.b))
		require.NoError(t, err)
		assert.Equal(t, tt.want, d)

		assert.Equal(t, tt.want, EditDistanceWithPeq(NewPeq([]byte(tt.a)), []byte(tt.b)))
	}
}

func TestWidthBoundary(t *testing.T) {
	full := []byte(strings.Repeat("ACGT", Width/4))
	tooLong := append(append([]byte(nil), full...), 'A')

	d, err := TryEditDistance(full, full[1:])
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	_, err = TryEditDistance(tooLong, full)
	assert.ErrorIs(t, err, peq.ErrPatternTooLong)
	assert.Panics(t, func() { EditDistance(tooLong, full) })
}

func TestBackendEquivalence(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))

	for i := 0; i < 2000; i++ {
		a := levenshtein.RandomSequence(rnd, rnd.Intn(scalar.Width+1), "ACGT")
		b := levenshtein.RandomSequence(rnd, rnd.Intn(300), "ACGT")

		require.Equal(t, scalar.EditDistance(a, b), EditDistance(a, b), "EditDistance(%q, %q)", a, b)
	}
}

func FuzzEditDistance(f *testing.F) {
	f.Add([]byte("ACCCT"), []byte("ACCTT"))
	f.Add([]byte(strings.Repeat("AC", 256)), []byte(strings.Repeat("CA", 256)))

	f.Fuzz(func(t *testing.T, a, b []byte) {
		if len(b) > 1024 {
			b = b[:1024]
		}
		got, err := TryEditDistance(a, b)
		if len(a) > Width {
			if err == nil {
				t.Fatalf("TryEditDistance accepted a %d-byte pattern", len(a))
			}
			return
		}
		if want := levenshtein.Distance(a, b); got != want {
			t.Fatalf("EditDistance(%q, %q) = %d, want %d", a, b, got, want)
		}
	})
}
