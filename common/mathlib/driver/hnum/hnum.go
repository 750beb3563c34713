package hnum

import (
	"fmt"
	"io"

	"github.com/11090815/hypernum/common/mathlib/driver"
	"github.com/11090815/hypernum/common/numerics"
	"github.com/11090815/hypernum/vars"
)

// Field 用 numerics.Integer 实现的素数域，模数 order 由调用方保证是素数。
type Field struct {
	order numerics.Integer
	size  int
}

func NewField(order numerics.Integer) (*Field, error) {
	if order.Cmp(numerics.Two) < 0 {
		return nil, vars.ErrorInvalidArgument{Operation: "NewField", Reason: fmt.Sprintf("order %s is less than 2", order)}
	}
	return &Field{order: order, size: (order.BitLen() + 7) / 8}, nil
}

func (f *Field) Order() numerics.Integer {
	return f.order
}

func (f *Field) FieldBytes() int {
	return f.size
}

func (f *Field) NewZrFromInt(i int64) driver.Zr {
	return f.NewZrFromInteger(numerics.NewInt(i))
}

func (f *Field) NewZrFromInteger(x numerics.Integer) driver.Zr {
	return f.elem(x)
}

func (f *Field) NewZrFromBytes(b []byte) driver.Zr {
	return f.elem(numerics.FromBigEndianBytes(b))
}

// NewRandomZr 多读 16 个字节再约简，使结果的分布足够接近均匀分布。
func (f *Field) NewRandomZr(rng io.Reader) (driver.Zr, error) {
	buf := make([]byte, f.size+16)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, fmt.Errorf("failed reading randomness: [%s]", err.Error())
	}
	return f.NewZrFromBytes(buf), nil
}

func (f *Field) elem(x numerics.Integer) *zr {
	return &zr{v: x.Mod(f.order), f: f}
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

type zr struct {
	v numerics.Integer
	f *Field
}

func (z *zr) Plus(a driver.Zr) driver.Zr {
	return z.f.elem(z.v.Add(a.(*zr).v))
}

func (z *zr) Minus(a driver.Zr) driver.Zr {
	return z.f.elem(z.v.Sub(a.(*zr).v))
}

func (z *zr) Mul(a driver.Zr) driver.Zr {
	return z.f.elem(z.v.Mul(a.(*zr).v))
}

func (z *zr) PowMod(e driver.Zr) driver.Zr {
	// 模数不为 0、指数非负，ModPow 不会失败
	v, err := z.v.ModPow(e.(*zr).v, z.f.order)
	if err != nil {
		panic(err)
	}
	return &zr{v: v, f: z.f}
}

func (z *zr) Inverse() (driver.Zr, error) {
	v, err := z.v.ModInverse(z.f.order)
	if err != nil {
		return nil, err
	}
	return &zr{v: v, f: z.f}, nil
}

func (z *zr) Neg() driver.Zr {
	return z.f.elem(z.v.Neg())
}

func (z *zr) IsZero() bool {
	return z.v.IsZero()
}

func (z *zr) Equals(a driver.Zr) bool {
	return z.v.Equal(a.(*zr).v)
}

func (z *zr) Bytes() []byte {
	b := z.v.BigEndianBytes()
	out := make([]byte, z.f.size)
	copy(out[z.f.size-len(b):], b)
	return out
}

func (z *zr) Int() numerics.Integer {
	return z.v
}

func (z *zr) Copy() driver.Zr {
	return &zr{v: z.v, f: z.f}
}

func (z *zr) String() string {
	return z.v.String()
}
