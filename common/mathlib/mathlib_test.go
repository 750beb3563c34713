package mathlib_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/11090815/hypernum/common/mathlib"
	"github.com/11090815/hypernum/common/mathlib/driver/hnum"
	"github.com/11090815/hypernum/common/numerics"
	"github.com/11090815/hypernum/vars"
	"github.com/stretchr/testify/require"
)

func TestFieldParameters(t *testing.T) {
	bitLens := map[mathlib.FieldID]int{
		mathlib.BN254:       254,
		mathlib.BN254_GURVY: 254,
		mathlib.SECP256K1:   256,
	}

	for _, f := range mathlib.Fields {
		require.Equal(t, 32, f.FieldBytes)
		require.Equal(t, bitLens[f.ID], f.Order.BitLen())
	}
	require.True(t, mathlib.Fields[mathlib.BN254].Order.Equal(mathlib.Fields[mathlib.BN254_GURVY].Order))
}

// numerics 实现的 BN254 与 gnark-crypto 实现的 BN254 对相同的输入必须给出相同的结果。
func TestBN254DriversAgree(t *testing.T) {
	hf, gf := mathlib.Fields[mathlib.BN254], mathlib.Fields[mathlib.BN254_GURVY]
	r := rand.New(rand.NewSource(2024))

	same := func(h, g *mathlib.Zr) {
		t.Helper()
		require.Equal(t, h.String(), g.String())
		require.Equal(t, h.Bytes(), g.Bytes())
	}

	for i := 0; i < 32; i++ {
		ab, bb := make([]byte, 48), make([]byte, 48)
		r.Read(ab)
		r.Read(bb)

		ha, hb := hf.NewZrFromBytes(ab), hf.NewZrFromBytes(bb)
		ga, gb := gf.NewZrFromBytes(ab), gf.NewZrFromBytes(bb)
		same(ha, ga)

		same(hf.ModAdd(ha, hb), gf.ModAdd(ga, gb))
		same(hf.ModSub(ha, hb), gf.ModSub(ga, gb))
		same(hf.ModMul(ha, hb), gf.ModMul(ga, gb))
		same(ha.PowMod(hb), ga.PowMod(gb))
		same(ha.Neg(), ga.Neg())

		hi, err := ha.Inverse()
		require.NoError(t, err)
		gi, err := ga.Inverse()
		require.NoError(t, err)
		same(hi, gi)
		require.True(t, hf.ModMul(ha, hi).Equals(hf.NewZrFromInt(1)))
	}

	same(hf.NewZrFromInt(-5), gf.NewZrFromInt(-5))
	same(hf.NewZrFromInteger(numerics.MustParse("-123456789123456789123456789", 10)), gf.NewZrFromInteger(numerics.MustParse("-123456789123456789123456789", 10)))
}

func TestInverseOfZero(t *testing.T) {
	for _, f := range mathlib.Fields {
		zero := f.NewZrFromInt(0)
		require.True(t, zero.IsZero())

		_, err := zero.Inverse()
		var target vars.ErrorNoInverseExists
		require.ErrorAs(t, err, &target)
	}
}

func TestFermat(t *testing.T) {
	for _, f := range mathlib.Fields {
		exponent := f.NewZrFromInteger(f.Order.Dec())
		for _, v := range []int64{2, 3, -7, 65537} {
			require.True(t, f.NewZrFromInt(v).PowMod(exponent).Equals(f.NewZrFromInt(1)), "field %d value %d", f.ID, v)
		}
	}
}

func TestRandomZr(t *testing.T) {
	f := mathlib.Fields[mathlib.SECP256K1]

	z, err := f.NewRandomZr(rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.True(t, z.Int().Less(f.Order))
	require.Len(t, z.Bytes(), 32)

	c := z.Copy()
	require.True(t, c.Equals(z))

	_, err = f.NewRandomZr(bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
}

func TestFieldMismatchPanics(t *testing.T) {
	a := mathlib.Fields[mathlib.BN254].NewZrFromInt(1)
	b := mathlib.Fields[mathlib.SECP256K1].NewZrFromInt(1)
	require.Panics(t, func() { a.Plus(b) })
}

func TestNewHnumField(t *testing.T) {
	_, err := hnum.NewField(numerics.One)
	var target vars.ErrorInvalidArgument
	require.ErrorAs(t, err, &target)

	f, err := hnum.NewField(numerics.NewInt(497))
	require.NoError(t, err)
	require.Equal(t, 2, f.FieldBytes())
	require.Equal(t, "445", f.NewZrFromInt(4).PowMod(f.NewZrFromInt(13)).String())
	require.Equal(t, []byte{0x01, 0xBD}, f.NewZrFromInt(445).Bytes())
	require.Equal(t, "492", f.NewZrFromInt(5).Neg().String())
}
