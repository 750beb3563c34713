package numerics

import (
	"fmt"

	"github.com/11090815/hypernum/vars"
)

// ModPow 计算 x^e mod |m|。
//
//   - e 为负数或 m 为 0 时返回 vars.ErrorInvalidArgument；
//   - |m| 为 1 时结果为 0；
//   - x 为负数时先用 |x| mod |m| 参与运算，e 为奇数时再给结果加上负号，结果落在 (-|m|, 0] 内。
//
// 约简使用 Barrett 算法，平方-乘从 e 的最低位开始扫描。
func (x Integer) ModPow(e, m Integer) (Integer, error) {
	if e.Sign() < 0 {
		return Zero, vars.ErrorInvalidArgument{Operation: "ModPow", Reason: fmt.Sprintf("negative exponent %s", e)}
	}
	if m.IsZero() {
		return Zero, vars.ErrorInvalidArgument{Operation: "ModPow", Reason: "zero modulus"}
	}

	n := m.words()
	if isOneMag(n) {
		return Zero, nil
	}

	_, base := divMag(x.words(), n)
	negative := x.Sign() < 0 && e.Bit(0) == 1

	br := newBarrett(n)
	result := []uint32{1}
	exp := e.words()
	for i, total := 0, bitLenMag(exp); i < total; i++ {
		if bitMag(exp, uint(i)) == 1 {
			result = br.reduce(mulMag(result, base))
		}
		if i+1 == total {
			break
		}
		base = br.reduce(mulMag(base, base))
		if isOneMag(base) {
			// 之后的平方都是 1，乘进结果也不会改变结果
			break
		}
	}

	if negative {
		return newInteger(-1, result), nil
	}
	return newInteger(1, result), nil
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// barrett 保存模数 n、n 的字长 k 以及预先算好的常数 mu = floor(b^(2k) / n)，其中 b = 2^32。
type barrett struct {
	n  []uint32
	mu []uint32
	k  int
}

func newBarrett(n []uint32) barrett {
	k := len(n)
	b2k := make([]uint32, 2*k+1)
	b2k[2*k] = 1
	mu, _ := divMag(b2k, n)
	return barrett{n: n, mu: mu, k: k}
}

// reduce 计算 x mod n，要求 x < b^(2k)。
//
//  1. q1 = floor(x / b^(k-1))
//  2. q3 = floor(q1 * mu / b^(k+1))
//  3. r1 = x mod b^(k+1)
//  4. r2 = (q3 * n) mod b^(k+1)
//  5. r = r1 - r2，结果为负时加上 b^(k+1)
//  6. r >= n 时反复减去 n，最多两次
func (br barrett) reduce(x []uint32) []uint32 {
	if cmpMag(x, br.n) < 0 {
		return x
	}

	k := br.k
	q1 := x[k-1:]
	q2 := mulMag(q1, br.mu)
	var q3 []uint32
	if len(q2) > k+1 {
		q3 = q2[k+1:]
	}

	r1 := truncMag(x, k+1)
	r2 := mulLowMag(q3, br.n, k+1)
	r := subWindowMag(r1, r2, k+1)
	for cmpMag(r, br.n) >= 0 {
		r = subMag(r, br.n)
	}
	return r
}
