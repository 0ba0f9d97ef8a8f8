package wide

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/myersed/internal/invariant"
)

var mod512 = new(big.Int).Lsh(big.NewInt(1), Bits)

func toBig(v Vec512) *big.Int {
	x := new(big.Int)
	for i := Lanes - 1; i >= 0; i-- {
		x.Lsh(x, LaneBits)
		x.Or(x, new(big.Int).SetUint64(v[i]))
	}
	return x
}

func fromBig(x *big.Int) Vec512 {
	x = new(big.Int).Mod(x, mod512)
	var v Vec512
	lane := new(big.Int).SetUint64(^uint64(0))
	for i := 0; i < Lanes; i++ {
		v[i] = new(big.Int).And(x, lane).Uint64()
		x.Rsh(x, LaneBits)
	}
	return v
}

// randVec favours lanes at and around the wrap boundary.
func randVec(rnd *rand.Rand) Vec512 {
	var v Vec512
	for i := range v {
		switch rnd.Intn(5) {
		case 0:
			v[i] = 0
		case 1:
			v[i] = ^uint64(0)
		case 2:
			v[i] = ^uint64(0) - uint64(rnd.Intn(3))
		default:
			v[i] = rnd.Uint64()
		}
	}
	return v
}

func TestBigRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		v := randVec(rnd)
		require.Equal(t, v, fromBig(toBig(v)))
	}
}

func TestBitAt(t *testing.T) {
	for i := 0; i < Bits; i++ {
		want := new(big.Int).Lsh(big.NewInt(1), uint(i))
		got := Zero.BitAt(i)
		require.Equal(t, 0, want.Cmp(toBig(got)), "bit %d", i)
		require.Equal(t, 1, got.PopCount())
	}
	assert.Equal(t, One, Zero.BitAt(0))
	assert.Equal(t, Vec512{7: 1 << 63}, Zero.BitAt(Bits-1))

	if invariant.Enabled {
		assert.Panics(t, func() { Zero.BitAt(Bits) })
		assert.Panics(t, func() { Zero.BitAt(-1) })
	}
}

func TestWordCapability(t *testing.T) {
	assert.Equal(t, 512, Zero.Width())
	assert.Equal(t, Vec512{0b101, 0, 0, 1}, Zero.BitAt(0).Or(Zero.BitAt(2)).Or(Zero.BitAt(192)))
}

func TestBitwise(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		a, b := randVec(rnd), randVec(rnd)
		ba, bb := toBig(a), toBig(b)

		assert.Equal(t, fromBig(new(big.Int).And(ba, bb)), a.And(b))
		assert.Equal(t, fromBig(new(big.Int).Or(ba, bb)), a.Or(b))
		assert.Equal(t, fromBig(new(big.Int).Xor(ba, bb)), a.Xor(b))
		assert.Equal(t, a, a.Not().Not())
		assert.Equal(t, AllOnes, a.Or(a.Not()))
	}
}
