package driver

import (
	"io"

	"github.com/11090815/hypernum/common/numerics"
)

// Zr 素数域 Z/qZ 中的元素，q 由创建它的 Field 决定。所有运算都返回新的元素，不修改接收者与参数。
// 不同 Field 创建的元素不能混合运算。
type Zr interface {
	Plus(Zr) Zr
	Minus(Zr) Zr
	Mul(Zr) Zr
	// PowMod 计算 z^e mod q。
	PowMod(e Zr) Zr
	// Inverse z 为 0 时返回 vars.ErrorNoInverseExists。
	Inverse() (Zr, error)
	Neg() Zr
	IsZero() bool
	Equals(Zr) bool
	// Bytes 大端序，长度固定为 Field.FieldBytes()。
	Bytes() []byte
	// Int 返回 [0, q) 内的代表元。
	Int() numerics.Integer
	Copy() Zr
	String() string
}

type Field interface {
	Order() numerics.Integer
	FieldBytes() int
	NewZrFromInt(i int64) Zr
	NewZrFromInteger(x numerics.Integer) Zr
	// NewZrFromBytes 把 b 当作大端序整数并约简到 [0, q)。
	NewZrFromBytes(b []byte) Zr
	NewRandomZr(rng io.Reader) (Zr, error)
}
