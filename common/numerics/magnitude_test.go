package numerics

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func magToBig(x []uint32) *big.Int {
	b := new(big.Int)
	for i := len(x) - 1; i >= 0; i-- {
		b.Lsh(b, wordBits)
		b.Or(b, big.NewInt(int64(x[i])))
	}
	return b
}

func randomMag(r *rand.Rand, maxWords int) []uint32 {
	x := make([]uint32, 1+r.Intn(maxWords))
	for i := range x {
		switch r.Intn(4) {
		case 0:
			x[i] = 0xffffffff
		case 1:
			x[i] = 0
		default:
			x[i] = r.Uint32()
		}
	}
	x[len(x)-1] |= 1
	return x
}

func TestDivMagAgainstMathBig(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 5000; i++ {
		u, v := randomMag(r, 12), randomMag(r, 6)
		q, rem := divMag(u, v)

		bq, br := new(big.Int).QuoRem(magToBig(u), magToBig(v), new(big.Int))
		require.Equal(t, bq.String(), magToBig(q).String())
		require.Equal(t, br.String(), magToBig(rem).String())
		require.Equal(t, q, normMag(q))
		require.Equal(t, rem, normMag(rem))
	}
}

func TestBarrettReduce(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 3000; i++ {
		n := randomMag(r, 8)
		if isOneMag(n) {
			continue
		}
		br := newBarrett(n)
		bn := magToBig(n)

		// reduce 的输入不超过 (n-1)^2
		a, b := randomMag(r, len(n)), randomMag(r, len(n))
		_, a = divMag(a, n)
		_, b = divMag(b, n)
		x := mulMag(a, b)

		expected := new(big.Int).Mod(magToBig(x), bn)
		require.Equal(t, expected.String(), magToBig(br.reduce(x)).String())
	}
}

func TestWindowHelpers(t *testing.T) {
	// (1 - 2) mod b^2 = b^2 - 1
	require.Equal(t, []uint32{0xffffffff, 0xffffffff}, subWindowMag([]uint32{1}, []uint32{2}, 2))
	require.Equal(t, []uint32{1}, truncMag([]uint32{1, 0, 5}, 2))

	x := []uint32{0xffffffff, 0xffffffff, 0xffffffff}
	y := []uint32{0xffffffff, 0xffffffff}
	full := mulMag(x, y)
	for width := 1; width <= len(full)+1; width++ {
		require.Equal(t, truncMag(full, width), mulLowMag(x, y, width), "width %d", width)
	}
}

func TestMagnitudeDoesNotMutate(t *testing.T) {
	u := []uint32{1, 2, 3, 0x80000000}
	v := []uint32{5, 0x1234}
	uc, vc := append([]uint32(nil), u...), append([]uint32(nil), v...)

	divMag(u, v)
	mulMag(u, v)
	addMag(u, v)
	subMag(u, v)
	lshMag(u, 37)
	rshMag(u, 37)
	newBarrett(v).reduce(u)

	require.Equal(t, uc, u)
	require.Equal(t, vc, v)
}

func TestSubMagUnderflowPanics(t *testing.T) {
	require.Panics(t, func() { subMag([]uint32{1}, []uint32{2}) })
}
