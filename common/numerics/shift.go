package numerics

// Lsh 返回 x << n。移位只作用在绝对值上，符号保持不变。
func (x Integer) Lsh(n uint) Integer {
	return newInteger(x.Sign(), lshMag(x.words(), n))
}

// Rsh 返回 |x| >> n 并保留 x 的符号，即负数向 0 截断，例如 -5 >> 1 = -2。
func (x Integer) Rsh(n uint) Integer {
	return newInteger(x.Sign(), rshMag(x.words(), n))
}
