package numerics

import (
	"github.com/11090815/hypernum/common/hlogging"
)

var logger = hlogging.MustGetLogger("numerics")

// Integer 任意精度的有符号整数。
//
// 数值由符号 sign 与绝对值 mag 两部分组成：
//   - sign 只能取 -1、0、+1，当且仅当数值为 0 时 sign 为 0；
//   - mag 是 32 位无符号字组成的序列，低位字在前，最高位字不为 0，数值 0 用单个 0 字表示。
//
// Integer 是不可变的值类型，所有运算都返回新的值，不会改写参数，因此可以在多个 goroutine 之间随意共享。
// 零值 Integer{} 表示 0。
type Integer struct {
	sign int
	mag  []uint32
}

var (
	Zero = Integer{sign: 0, mag: []uint32{0}}
	One  = Integer{sign: 1, mag: []uint32{1}}
	Two  = Integer{sign: 1, mag: []uint32{2}}
	Ten  = Integer{sign: 1, mag: []uint32{10}}
)

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// newInteger 对 mag 做规范化处理：去掉高位的 0 字，绝对值为 0 时得到规范的 0，否则 sign 被强制为 ±1。
func newInteger(sign int, mag []uint32) Integer {
	mag = normMag(mag)
	if len(mag) == 0 {
		return Zero
	}
	if sign < 0 {
		return Integer{sign: -1, mag: mag}
	}
	return Integer{sign: 1, mag: mag}
}

// words 返回去掉高位 0 字后的绝对值，数值为 0 时返回 nil，仅供包内的绝对值运算使用，调用方不得修改返回的切片。
func (x Integer) words() []uint32 {
	return normMag(x.mag)
}

func NewInt(v int64) Integer {
	if v < 0 {
		return newInteger(-1, magFromUint64(uint64(-v)))
	}
	return newInteger(1, magFromUint64(uint64(v)))
}

func NewUint(v uint64) Integer {
	return newInteger(1, magFromUint64(v))
}

// FromWords 由低位在前的字序列构造整数，sign 小于 0 时得到负数，其余情况一律视为正数，绝对值为 0 时结果为 0。
func FromWords(words []uint32, sign int) Integer {
	mag := make([]uint32, len(words))
	copy(mag, words)
	if sign < 0 {
		return newInteger(-1, mag)
	}
	return newInteger(1, mag)
}

// FromBytes 以小端序解析字节序列，每 4 个字节组成一个字，不足 4 个字节的部分填充最后一个字，结果非负。
func FromBytes(b []byte) Integer {
	return newInteger(1, magFromBytes(b))
}

func FromSignedBytes(b []byte, sign int) Integer {
	return newInteger(sign, magFromBytes(b))
}

// FromBigEndianBytes 以大端序解析字节序列，常用于把哈希值当作整数使用。
func FromBigEndianBytes(b []byte) Integer {
	le := make([]byte, len(b))
	for i := range b {
		le[len(b)-1-i] = b[i]
	}
	return newInteger(1, magFromBytes(le))
}

func magFromBytes(b []byte) []uint32 {
	mag := make([]uint32, (len(b)+3)/4)
	for i, v := range b {
		mag[i/4] |= uint32(v) << (8 * uint(i%4))
	}
	return mag
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// Sign 返回 -1、0 或 +1。
func (x Integer) Sign() int {
	if len(x.words()) == 0 {
		return 0
	}
	return x.sign
}

func (x Integer) IsZero() bool {
	return len(x.words()) == 0
}

// Cmp 比较 x 与 y 的大小：x < y 返回 -1，x == y 返回 0，x > y 返回 +1。
func (x Integer) Cmp(y Integer) int {
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	}

	c := cmpMag(x.words(), y.words())
	if xs < 0 {
		return -c
	}
	return c
}

// CmpAbs 比较 |x| 与 |y| 的大小。
func (x Integer) CmpAbs(y Integer) int {
	return cmpMag(x.words(), y.words())
}

func (x Integer) Equal(y Integer) bool {
	return x.Cmp(y) == 0
}

func (x Integer) Less(y Integer) bool {
	return x.Cmp(y) < 0
}

func Max(x, y Integer) Integer {
	if x.Cmp(y) >= 0 {
		return newInteger(x.sign, x.words())
	}
	return newInteger(y.sign, y.words())
}

func Min(x, y Integer) Integer {
	if x.Cmp(y) <= 0 {
		return newInteger(x.sign, x.words())
	}
	return newInteger(y.sign, y.words())
}
