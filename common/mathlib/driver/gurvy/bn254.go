package gurvy

import (
	"fmt"
	"io"
	"math/big"

	"github.com/11090815/hypernum/common/mathlib/driver"
	"github.com/11090815/hypernum/common/numerics"
	"github.com/11090815/hypernum/vars"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

const fieldBytes = 32

// Bn254 BN254 曲线的标量域，运算由 gnark-crypto 的 fr.Element 完成。
type Bn254 struct{}

func NewBn254() *Bn254 {
	return &Bn254{}
}

func (*Bn254) Order() numerics.Integer {
	return numerics.FromBigEndianBytes(fr.Modulus().Bytes())
}

func (*Bn254) FieldBytes() int {
	return fieldBytes
}

func (*Bn254) NewZrFromInt(i int64) driver.Zr {
	z := &bn254Zr{}
	z.SetBigInt(big.NewInt(i))
	return z
}

func (*Bn254) NewZrFromInteger(x numerics.Integer) driver.Zr {
	z := &bn254Zr{}
	z.SetBigInt(toBig(x))
	return z
}

func (*Bn254) NewZrFromBytes(b []byte) driver.Zr {
	z := &bn254Zr{}
	z.SetBigInt(new(big.Int).SetBytes(b))
	return z
}

func (p *Bn254) NewRandomZr(rng io.Reader) (driver.Zr, error) {
	buf := make([]byte, fieldBytes+16)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, fmt.Errorf("failed reading randomness: [%s]", err.Error())
	}
	return p.NewZrFromBytes(buf), nil
}

func toBig(x numerics.Integer) *big.Int {
	b := new(big.Int).SetBytes(x.BigEndianBytes())
	if x.Sign() < 0 {
		b.Neg(b)
	}
	return b
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

type bn254Zr struct {
	fr.Element
}

func (z *bn254Zr) Plus(a driver.Zr) driver.Zr {
	r := &bn254Zr{}
	r.Element.Add(&z.Element, &a.(*bn254Zr).Element)
	return r
}

func (z *bn254Zr) Minus(a driver.Zr) driver.Zr {
	r := &bn254Zr{}
	r.Element.Sub(&z.Element, &a.(*bn254Zr).Element)
	return r
}

func (z *bn254Zr) Mul(a driver.Zr) driver.Zr {
	r := &bn254Zr{}
	r.Element.Mul(&z.Element, &a.(*bn254Zr).Element)
	return r
}

func (z *bn254Zr) PowMod(e driver.Zr) driver.Zr {
	r := &bn254Zr{}
	r.Element.Exp(z.Element, e.(*bn254Zr).Element.ToBigIntRegular(new(big.Int)))
	return r
}

func (z *bn254Zr) Inverse() (driver.Zr, error) {
	if z.Element.IsZero() {
		return nil, vars.ErrorNoInverseExists{Value: "0", Modulus: fr.Modulus().String()}
	}
	r := &bn254Zr{}
	r.Element.Inverse(&z.Element)
	return r, nil
}

func (z *bn254Zr) Neg() driver.Zr {
	r := &bn254Zr{}
	r.Element.Neg(&z.Element)
	return r
}

func (z *bn254Zr) IsZero() bool {
	return z.Element.IsZero()
}

func (z *bn254Zr) Equals(a driver.Zr) bool {
	return z.Element.Equal(&a.(*bn254Zr).Element)
}

func (z *bn254Zr) Bytes() []byte {
	return z.Element.ToBigIntRegular(new(big.Int)).FillBytes(make([]byte, fieldBytes))
}

func (z *bn254Zr) Int() numerics.Integer {
	return numerics.FromBigEndianBytes(z.Bytes())
}

func (z *bn254Zr) Copy() driver.Zr {
	return &bn254Zr{Element: z.Element}
}

func (z *bn254Zr) String() string {
	return z.Int().String()
}
