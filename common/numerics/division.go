package numerics

import "math/bits"

// DivMod 计算 x 除以 y 的商与余数。
//
// 约定：
//   - y 为 0 时不报错，直接返回 (0, 0)；
//   - 余数总是落在 [0, |y|) 内，商随之调整，始终满足 q*y + r == x；
//   - x 为负且能被 y 整除时余数仍为 0，不会被修正成 |y|；
//   - 例如 DivMod(-7, 3) = (-3, 2)，DivMod(-7, -3) = (3, 2)，DivMod(7, -3) = (-2, 1)。
//
// 需要截断除法（余数与被除数同号）时使用 QuoRem。
func (x Integer) DivMod(y Integer) (q, r Integer) {
	if y.IsZero() {
		logger.Debugf("Dividing %s by zero, returning (0, 0).", x)
		return Zero, Zero
	}

	q, r = x.QuoRem(y)
	if x.Sign() < 0 && !r.IsZero() {
		// r 为负数，|y| + r 即 |y| - |r|
		r = newInteger(1, subMag(y.words(), r.words()))
		q = q.Sub(NewInt(int64(y.Sign())))
	}
	return q, r
}

// Div 返回 DivMod 的商。
func (x Integer) Div(y Integer) Integer {
	q, _ := x.DivMod(y)
	return q
}

// Mod 返回 DivMod 的余数，结果落在 [0, |y|) 内。
func (x Integer) Mod(y Integer) Integer {
	_, r := x.DivMod(y)
	return r
}

// QuoRem 截断除法：商向 0 取整，余数与被除数同号，y 为 0 时返回 (0, 0)。
func (x Integer) QuoRem(y Integer) (q, r Integer) {
	if y.IsZero() {
		logger.Debugf("Dividing %s by zero, returning (0, 0).", x)
		return Zero, Zero
	}

	qm, rm := divMag(x.words(), y.words())
	return newInteger(x.Sign()*y.Sign(), qm), newInteger(x.Sign(), rm)
}

func (x Integer) Quo(y Integer) Integer {
	q, _ := x.QuoRem(y)
	return q
}

func (x Integer) Rem(y Integer) Integer {
	_, r := x.QuoRem(y)
	return r
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// divMag 计算 u / v 的商与余数，v 不能为 0。
func divMag(u, v []uint32) (q, r []uint32) {
	if len(v) == 0 {
		panic("numerics: division by zero magnitude")
	}
	if cmpMag(u, v) < 0 {
		return nil, u
	}
	if len(v) == 1 {
		q, rw := divWordMag(u, v[0])
		return q, normMag([]uint32{rw})
	}
	return divLargeMag(u, v)
}

// divWordMag 从最高位字开始，用 (上一步的余数 << 32) | 当前字 除以 v，逐字得到商。
func divWordMag(u []uint32, v uint32) (q []uint32, r uint32) {
	q = make([]uint32, len(u))
	var rem uint64
	for i := len(u) - 1; i >= 0; i-- {
		cur := rem<<wordBits | uint64(u[i])
		q[i] = uint32(cur / uint64(v))
		rem = cur % uint64(v)
	}
	return normMag(q), uint32(rem)
}

// divLargeMag 规范化长除法，要求 len(v) >= 2 且 u >= v。
//
//  1. 将 u、v 同时左移 shift 位，使 v 最高位字的最高比特为 1；
//  2. 从高到低逐位试商：用窗口最高两个字除以 v 的最高位字得到 qhat 与 rhat，再借助 v 的次高位字修正 qhat；
//  3. 用完整的乘积 qhat*v 与当前窗口比较，乘积偏大则继续减小 qhat；
//  4. 从窗口中减去 qhat*v，差值即为下一轮的窗口；
//  5. 最后把余数右移 shift 位还原。
func divLargeMag(u, v []uint32) (q, r []uint32) {
	n := len(v)
	m := len(u) - n
	shift := uint(bits.LeadingZeros32(v[n-1]))

	vn := make([]uint32, n)
	shlWords(vn, v, shift)
	un := make([]uint32, len(u)+1)
	un[len(u)] = shlWords(un[:len(u)], u, shift)

	vTop, vSecond := uint64(vn[n-1]), uint64(vn[n-2])
	const base = 1 << wordBits

	q = make([]uint32, m+1)
	for j := m; j >= 0; j-- {
		num := uint64(un[j+n])<<wordBits | uint64(un[j+n-1])
		qhat := num / vTop
		rhat := num % vTop
		for qhat >= base || qhat*vSecond > (rhat<<wordBits|uint64(un[j+n-2])) {
			qhat--
			rhat += vTop
			if rhat >= base {
				break
			}
		}

		window := normMag(un[j : j+n+1])
		product := mulMag(vn, magFromUint64(qhat))
		for cmpMag(product, window) > 0 {
			qhat--
			product = subMag(product, vn)
		}

		diff := subMag(window, product)
		for i := j; i <= j+n; i++ {
			un[i] = 0
		}
		copy(un[j:], diff)
		q[j] = uint32(qhat)
	}

	return normMag(q), rshMag(normMag(un[:n]), shift)
}
