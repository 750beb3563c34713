package mathlib

import (
	"fmt"
	"io"

	"github.com/11090815/hypernum/common/mathlib/driver"
	"github.com/11090815/hypernum/common/mathlib/driver/gurvy"
	"github.com/11090815/hypernum/common/mathlib/driver/hnum"
	"github.com/11090815/hypernum/common/numerics"
)

type FieldID int

const (
	// BN254 BN254 曲线的标量域，由 numerics 实现。
	BN254 FieldID = iota
	// BN254_GURVY 与 BN254 是同一个域，由 gnark-crypto 实现，二者的计算结果可以互相校验。
	BN254_GURVY
	// SECP256K1 secp256k1 曲线的群阶，由 numerics 实现。
	SECP256K1
)

var Fields = []*Field{
	newField(BN254, mustHnum("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)),
	newField(BN254_GURVY, gurvy.NewBn254()),
	newField(SECP256K1, mustHnum("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)),
}

func mustHnum(order string, radix int) driver.Field {
	f, err := hnum.NewField(numerics.MustParse(order, radix))
	if err != nil {
		panic(err)
	}
	return f
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// Field 对 driver.Field 的封装，保证参与运算的元素来自同一个域。
type Field struct {
	f          driver.Field
	ID         FieldID
	Order      numerics.Integer
	FieldBytes int
}

func newField(id FieldID, f driver.Field) *Field {
	return &Field{
		f:          f,
		ID:         id,
		Order:      f.Order(),
		FieldBytes: f.FieldBytes(),
	}
}

func (f *Field) wrap(zr driver.Zr) *Zr {
	return &Zr{zr: zr, fieldID: f.ID}
}

func (f *Field) NewZrFromInt(i int64) *Zr {
	return f.wrap(f.f.NewZrFromInt(i))
}

func (f *Field) NewZrFromInteger(x numerics.Integer) *Zr {
	return f.wrap(f.f.NewZrFromInteger(x))
}

func (f *Field) NewZrFromBytes(b []byte) *Zr {
	return f.wrap(f.f.NewZrFromBytes(b))
}

func (f *Field) NewRandomZr(rng io.Reader) (*Zr, error) {
	zr, err := f.f.NewRandomZr(rng)
	if err != nil {
		return nil, err
	}
	return f.wrap(zr), nil
}

// ModAdd 计算 (a + b) mod q。
func (f *Field) ModAdd(a, b *Zr) *Zr {
	return a.Plus(b)
}

func (f *Field) ModSub(a, b *Zr) *Zr {
	return a.Minus(b)
}

func (f *Field) ModMul(a, b *Zr) *Zr {
	return a.Mul(b)
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

type Zr struct {
	zr      driver.Zr
	fieldID FieldID
}

func (z *Zr) check(a *Zr) {
	if z.fieldID != a.fieldID {
		panic(fmt.Sprintf("field mismatch: %d != %d", z.fieldID, a.fieldID))
	}
}

func (z *Zr) Plus(a *Zr) *Zr {
	z.check(a)
	return &Zr{zr: z.zr.Plus(a.zr), fieldID: z.fieldID}
}

func (z *Zr) Minus(a *Zr) *Zr {
	z.check(a)
	return &Zr{zr: z.zr.Minus(a.zr), fieldID: z.fieldID}
}

func (z *Zr) Mul(a *Zr) *Zr {
	z.check(a)
	return &Zr{zr: z.zr.Mul(a.zr), fieldID: z.fieldID}
}

func (z *Zr) PowMod(e *Zr) *Zr {
	z.check(e)
	return &Zr{zr: z.zr.PowMod(e.zr), fieldID: z.fieldID}
}

// Inverse 0 没有逆元，返回 vars.ErrorNoInverseExists。
func (z *Zr) Inverse() (*Zr, error) {
	inv, err := z.zr.Inverse()
	if err != nil {
		return nil, err
	}
	return &Zr{zr: inv, fieldID: z.fieldID}, nil
}

func (z *Zr) Neg() *Zr {
	return &Zr{zr: z.zr.Neg(), fieldID: z.fieldID}
}

func (z *Zr) IsZero() bool {
	return z.zr.IsZero()
}

func (z *Zr) Equals(a *Zr) bool {
	z.check(a)
	return z.zr.Equals(a.zr)
}

func (z *Zr) Bytes() []byte {
	return z.zr.Bytes()
}

func (z *Zr) Int() numerics.Integer {
	return z.zr.Int()
}

func (z *Zr) Copy() *Zr {
	return &Zr{zr: z.zr.Copy(), fieldID: z.fieldID}
}

func (z *Zr) String() string {
	return z.zr.String()
}
