package numerics_test

import (
	"testing"

	"github.com/11090815/hypernum/common/numerics"
	"github.com/stretchr/testify/require"
)

func TestShift(t *testing.T) {
	x := numerics.MustParse("123456789ABCDEF0123456789", 16)
	for _, n := range []uint{0, 1, 31, 32, 33, 64, 100} {
		requireEqual(t, x, x.Lsh(n).Rsh(n))
		requireEqual(t, x.Mul(numerics.Two.Pow(n)), x.Lsh(n))
	}

	// 最高位字溢出时多出一个字
	require.Equal(t, []uint32{0xfffffffe, 1}, numerics.NewInt(0xffffffff).Lsh(1).Words())
	require.Equal(t, []uint32{0, 0, 1}, numerics.One.Lsh(64).Words())

	// 右移导致最高位字为 0 时缩短
	require.Equal(t, []uint32{0x80000000}, numerics.FromWords([]uint32{0, 1}, 1).Rsh(1).Words())

	// 移出所有比特后得到规范的 0
	zero := x.Rsh(200)
	require.Equal(t, 0, zero.Sign())
	require.Equal(t, []uint32{0}, zero.Words())
	require.True(t, numerics.Zero.Lsh(10).IsZero())

	// 负数向 0 截断
	require.Equal(t, "-2", numerics.NewInt(-5).Rsh(1).String())
	require.Equal(t, "-20", numerics.NewInt(-5).Lsh(2).String())
	require.True(t, numerics.NewInt(-1).Rsh(1).IsZero())
}

func TestBitwiseNonNegative(t *testing.T) {
	a := numerics.MustParse("F0F0F0F0F0F0F0F0F0", 16)
	b := numerics.MustParse("FF00FF00", 16)

	require.Equal(t, "F000F000", a.And(b).Text(16))
	require.Equal(t, "F0F0F0F0F0FFF0FFF0", a.Or(b).Text(16))
	require.Equal(t, "F0F0F0F0F00FF00FF0", a.Xor(b).Text(16))
	require.Equal(t, "F0F0F0F0F000F000F0", a.AndNot(b).Text(16))
	require.True(t, a.Xor(a).IsZero())
}

func TestBitwiseTwosComplement(t *testing.T) {
	tests := []struct {
		x, y                 int64
		and, or, xor, andNot int64
	}{
		{x: -6, y: 5, and: 0, or: -1, xor: -1, andNot: -6},
		{x: -1, y: 12, and: 12, or: -1, xor: -13, andNot: -13},
		{x: -8, y: -3, and: -8, or: -3, xor: 5, andNot: 0},
		{x: 12, y: -4, and: 12, or: -4, xor: -16, andNot: 0},
		{x: -4294967296, y: -1, and: -4294967296, or: -1, xor: 4294967295, andNot: 0},
	}

	for _, test := range tests {
		x, y := numerics.NewInt(test.x), numerics.NewInt(test.y)
		require.Equal(t, test.and, x.And(y).Int64(), "%d & %d", test.x, test.y)
		require.Equal(t, test.or, x.Or(y).Int64(), "%d | %d", test.x, test.y)
		require.Equal(t, test.xor, x.Xor(y).Int64(), "%d ^ %d", test.x, test.y)
		require.Equal(t, test.andNot, x.AndNot(y).Int64(), "%d &^ %d", test.x, test.y)
		require.Equal(t, ^test.x, x.Not().Int64())
	}
}

func TestBitAccess(t *testing.T) {
	x := numerics.NewInt(0b1010)
	require.Equal(t, uint(1), x.Bit(1))
	require.Equal(t, uint(0), x.Bit(2))
	require.Equal(t, uint(0), x.Bit(1000))

	require.Equal(t, "14", x.SetBit(2).String())
	require.Equal(t, "8", x.ClearBit(1).String())
	require.Equal(t, "11", x.FlipBit(0).String())
	require.Equal(t, "10", x.ClearBit(64).String())
	require.Equal(t, "-18446744073709551626", x.Neg().SetBit(64).String())

	require.Equal(t, "4294967296", numerics.Zero.SetBit(32).String())
	require.True(t, numerics.One.ClearBit(0).IsZero())
	require.Equal(t, 0, numerics.One.FlipBit(0).Sign())

	require.Equal(t, 4, x.BitLen())
	require.Equal(t, 0, numerics.Zero.BitLen())
	require.Equal(t, 33, numerics.NewInt(-4294967296).BitLen())
	require.Equal(t, uint(1), x.TrailingZeroBits())
	require.Equal(t, uint(64), numerics.One.Lsh(64).TrailingZeroBits())
	require.Equal(t, uint(0), numerics.Zero.TrailingZeroBits())
}
