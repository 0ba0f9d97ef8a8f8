package levenshtein

import "math/rand"

// EditKind is a single-character edit.
type EditKind int

const (
	Substitute EditKind = iota
	Insert
	Delete
)

// RandomSequence returns n bytes drawn uniformly from alphabet.
func RandomSequence(rnd *rand.Rand, n int, alphabet string) []byte {
	s := make([]byte, n)
	for i := range s {
		s[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	return s
}

// Mutate applies k edits of the given kind to a copy of s.
//
// Substituted and inserted bytes are taken from foreign, which must share no
// byte with s. Each foreign byte then costs exactly one edit to explain and
// earlier edits can never be cancelled by later ones, so the distance between
// s and the result is exactly k. Deletions never remove a previously inserted
// or substituted byte. k must not exceed len(s) for Substitute and Delete.
func Mutate(rnd *rand.Rand, s []byte, kind EditKind, k int, foreign string) []byte {
	out := append([]byte(nil), s...)
	touched := make([]bool, len(out))

	for e := 0; e < k; e++ {
		f := foreign[rnd.Intn(len(foreign))]
		switch kind {
		case Substitute:
			i := untouched(rnd, touched)
			out[i] = f
			touched[i] = true
		case Insert:
			i := rnd.Intn(len(out) + 1)
			out = append(out[:i], append([]byte{f}, out[i:]...)...)
			touched = append(touched[:i], append([]bool{true}, touched[i:]...)...)
		case Delete:
			i := untouched(rnd, touched)
			out = append(out[:i], out[i+1:]...)
			touched = append(touched[:i], touched[i+1:]...)
		}
	}
	return out
}

func untouched(rnd *rand.Rand, touched []bool) int {
	for {
		i := rnd.Intn(len(touched))
		if !touched[i] {
			return i
		}
	}
}
