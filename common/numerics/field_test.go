package numerics_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/11090815/hypernum/common/numerics"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

// 与 BN254 标量域 fr 的运算结果交叉验证 254 比特规模的模幂与模逆。

func fromBig(b *big.Int) numerics.Integer {
	return numerics.FromBigEndianBytes(b.Bytes())
}

func TestBN254ScalarField(t *testing.T) {
	modulus := fromBig(fr.Modulus())
	require.Equal(t, "21888242871839275222246405745257275088548364400416034343698204186575808495617", modulus.String())

	r := rand.New(rand.NewSource(254))
	for i := 0; i < 32; i++ {
		var a, b fr.Element
		a.SetBigInt(new(big.Int).Rand(r, fr.Modulus()))
		b.SetBigInt(new(big.Int).Rand(r, fr.Modulus()))

		x := fromBig(a.ToBigIntRegular(new(big.Int)))
		y := fromBig(b.ToBigIntRegular(new(big.Int)))

		var product fr.Element
		product.Mul(&a, &b)
		requireEqual(t, fromBig(product.ToBigIntRegular(new(big.Int))), x.Mul(y).Mod(modulus))

		var sum fr.Element
		sum.Sub(&a, &b)
		requireEqual(t, fromBig(sum.ToBigIntRegular(new(big.Int))), x.Sub(y).Mod(modulus))

		e := toBig(y)
		var power fr.Element
		power.Exp(a, e)
		actual, err := x.ModPow(y, modulus)
		require.NoError(t, err)
		requireEqual(t, fromBig(power.ToBigIntRegular(new(big.Int))), actual)

		if x.IsZero() {
			continue
		}
		var inverse fr.Element
		inverse.Inverse(&a)
		actual, err = x.ModInverse(modulus)
		require.NoError(t, err)
		requireEqual(t, fromBig(inverse.ToBigIntRegular(new(big.Int))), actual)
	}
}

func TestBN254Fermat(t *testing.T) {
	modulus := fromBig(fr.Modulus())
	exponent := modulus.Sub(numerics.Two)

	// a^(p-2) 即 a 的逆元
	for _, s := range []string{"2", "3", "123456789123456789123456789", "-5"} {
		a := numerics.MustParse(s, 10)
		viaPow, err := a.Mod(modulus).ModPow(exponent, modulus)
		require.NoError(t, err)
		viaInverse, err := a.ModInverse(modulus)
		require.NoError(t, err)
		requireEqual(t, viaInverse, viaPow)
	}
}
