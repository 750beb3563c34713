package numerics

import "math/bits"

// And、Or、Xor、AndNot、Not 按无限长的二进制补码解释操作数，与 math/big 的语义一致，
// 例如 -1 & x == x，-6 | 5 == -1，Not(x) == -x - 1。
// 对于非负操作数，结果等同于在较长操作数的长度上逐字运算。

func (x Integer) And(y Integer) Integer {
	return bitwise(x, y, func(a, b uint32) uint32 { return a & b })
}

func (x Integer) Or(y Integer) Integer {
	return bitwise(x, y, func(a, b uint32) uint32 { return a | b })
}

func (x Integer) Xor(y Integer) Integer {
	return bitwise(x, y, func(a, b uint32) uint32 { return a ^ b })
}

// AndNot 返回 x & ^y。
func (x Integer) AndNot(y Integer) Integer {
	return bitwise(x, y, func(a, b uint32) uint32 { return a &^ b })
}

func (x Integer) Not() Integer {
	return x.Neg().Dec()
}

// bitwise 先把两个操作数展开成同样宽度的补码，宽度比较长的操作数多一个字，保证最高比特就是符号位。
func bitwise(x, y Integer, op func(a, b uint32) uint32) Integer {
	width := len(x.words())
	if l := len(y.words()); l > width {
		width = l
	}
	width++

	a, b := toTwos(x, width), toTwos(y, width)
	z := make([]uint32, width)
	for i := range z {
		z[i] = op(a[i], b[i])
	}
	return fromTwos(z)
}

// toTwos 负数 -m 的补码是 ^(m - 1)。
func toTwos(x Integer, width int) []uint32 {
	z := make([]uint32, width)
	if x.Sign() >= 0 {
		copy(z, x.words())
		return z
	}

	copy(z, subMag(x.words(), One.mag))
	for i := range z {
		z[i] = ^z[i]
	}
	return z
}

func fromTwos(z []uint32) Integer {
	if z[len(z)-1]>>(wordBits-1) == 0 {
		return newInteger(1, z)
	}

	m := make([]uint32, len(z))
	for i := range z {
		m[i] = ^z[i]
	}
	return newInteger(-1, addMag(normMag(m), One.mag))
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// 以下按位访问的方法都作用在绝对值上。

// Bit 返回 |x| 的第 i 位。
func (x Integer) Bit(i uint) uint {
	return bitMag(x.words(), i)
}

// SetBit 把 |x| 的第 i 位置为 1，x 为 0 时得到正数 2^i。
func (x Integer) SetBit(i uint) Integer {
	return newInteger(x.Sign(), setBitMag(x.words(), i, 1))
}

func (x Integer) ClearBit(i uint) Integer {
	return newInteger(x.Sign(), setBitMag(x.words(), i, 0))
}

func (x Integer) FlipBit(i uint) Integer {
	return newInteger(x.Sign(), setBitMag(x.words(), i, x.Bit(i)^1))
}

// BitLen 返回 |x| 的比特长度，0 的比特长度为 0。
func (x Integer) BitLen() int {
	return bitLenMag(x.words())
}

// TrailingZeroBits 返回 |x| 末尾连续 0 比特的个数，x 为 0 时返回 0。
func (x Integer) TrailingZeroBits() uint {
	for i, w := range x.words() {
		if w != 0 {
			return uint(i*wordBits) + uint(bits.TrailingZeros32(w))
		}
	}
	return 0
}
