package numerics

import "math/bits"

// 本文件中的函数只处理绝对值，参数与返回值都是低位在前、去掉了高位 0 字的字序列，长度为 0 的切片表示 0。
// 这些函数从不修改参数，结果写在新分配的切片里。

const wordBits = 32

func normMag(mag []uint32) []uint32 {
	i := len(mag)
	for i > 0 && mag[i-1] == 0 {
		i--
	}
	return mag[:i]
}

func magFromUint64(v uint64) []uint32 {
	return normMag([]uint32{uint32(v), uint32(v >> wordBits)})
}

func isOneMag(x []uint32) bool {
	return len(x) == 1 && x[0] == 1
}

// cmpMag 先比较长度，长度相同时从最高位字开始逐字比较。
func cmpMag(x, y []uint32) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}

	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

func addMag(x, y []uint32) []uint32 {
	if len(x) < len(y) {
		x, y = y, x
	}

	z := make([]uint32, len(x)+1)
	var carry uint64
	for i := range x {
		sum := uint64(x[i]) + carry
		if i < len(y) {
			sum += uint64(y[i])
		}
		z[i] = uint32(sum)
		carry = sum >> wordBits
	}
	z[len(x)] = uint32(carry)

	return normMag(z)
}

// subMag 计算 x - y，要求 x >= y。
func subMag(x, y []uint32) []uint32 {
	z := make([]uint32, len(x))
	var borrow int64
	for i := range x {
		diff := int64(x[i]) - borrow
		if i < len(y) {
			diff -= int64(y[i])
		}
		if diff < 0 {
			diff += 1 << wordBits
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = uint32(diff)
	}
	if borrow != 0 {
		panic("numerics: magnitude subtraction underflow")
	}

	return normMag(z)
}

// mulMag 逐字相乘，每个乘积与进位在 64 位中间值里累加。
func mulMag(x, y []uint32) []uint32 {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}

	z := make([]uint32, len(x)+len(y)+1)
	for i, xi := range x {
		var carry uint64
		for j, yj := range y {
			t := uint64(xi)*uint64(yj) + uint64(z[i+j]) + carry
			z[i+j] = uint32(t)
			carry = t >> wordBits
		}
		z[i+len(y)] = uint32(carry)
	}

	return normMag(z)
}

// mulLowMag 只计算 x * y 的低 width 个字，超出部分直接丢弃。
func mulLowMag(x, y []uint32, width int) []uint32 {
	z := make([]uint32, width)
	for i := 0; i < len(x) && i < width; i++ {
		var carry uint64
		j := 0
		for ; j < len(y) && i+j < width; j++ {
			t := uint64(x[i])*uint64(y[j]) + uint64(z[i+j]) + carry
			z[i+j] = uint32(t)
			carry = t >> wordBits
		}
		if j == len(y) && i+j < width {
			z[i+j] = uint32(carry)
		}
	}
	return normMag(z)
}

// truncMag 取 x 的低 width 个字。
func truncMag(x []uint32, width int) []uint32 {
	if len(x) > width {
		x = x[:width]
	}
	return normMag(x)
}

// subWindowMag 在 width 个字的窗口内计算 (x - y) mod b^width，借位溢出时相当于加上 b^width。
func subWindowMag(x, y []uint32, width int) []uint32 {
	z := make([]uint32, width)
	var borrow int64
	for i := 0; i < width; i++ {
		diff := -borrow
		if i < len(x) {
			diff += int64(x[i])
		}
		if i < len(y) {
			diff -= int64(y[i])
		}
		if diff < 0 {
			diff += 1 << wordBits
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = uint32(diff)
	}
	return normMag(z)
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// shlWords 把 src 左移 s 位（s < 32）写入 dst，返回从最高位字移出的部分。dst 的长度不得小于 src。
func shlWords(dst, src []uint32, s uint) uint32 {
	var carry uint32
	for i, w := range src {
		dst[i] = w<<s | carry
		carry = w >> (wordBits - s)
	}
	return carry
}

// lshMag 先在低位补 n/32 个 0 字，再把每个字的溢出位搬到更高的字上，最高位字溢出时结果多出一个字。
func lshMag(x []uint32, n uint) []uint32 {
	if len(x) == 0 {
		return nil
	}

	shift := int(n / wordBits)
	z := make([]uint32, len(x)+shift+1)
	z[len(x)+shift] = shlWords(z[shift:len(x)+shift], x, n%wordBits)
	return normMag(z)
}

// rshMag 丢掉低位的 n/32 个字，再把高位字的低位搬到相邻低位字空出来的位置上。
func rshMag(x []uint32, n uint) []uint32 {
	shift := int(n / wordBits)
	if shift >= len(x) {
		return nil
	}

	s := n % wordBits
	src := x[shift:]
	z := make([]uint32, len(src))
	for i := range src {
		z[i] = src[i] >> s
		if i+1 < len(src) {
			z[i] |= src[i+1] << (wordBits - s)
		}
	}
	return normMag(z)
}

func bitLenMag(x []uint32) int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*wordBits + bits.Len32(x[len(x)-1])
}

func bitMag(x []uint32, i uint) uint {
	idx := int(i / wordBits)
	if idx >= len(x) {
		return 0
	}
	return uint(x[idx]>>(i%wordBits)) & 1
}

// setBitMag 返回把第 i 位设置为 bit 之后的新绝对值。
func setBitMag(x []uint32, i uint, bit uint) []uint32 {
	idx := int(i / wordBits)
	size := len(x)
	if idx >= size {
		size = idx + 1
	}

	z := make([]uint32, size)
	copy(z, x)
	mask := uint32(1) << (i % wordBits)
	if bit == 0 {
		z[idx] &^= mask
	} else {
		z[idx] |= mask
	}
	return normMag(z)
}
