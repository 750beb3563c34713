package numerics

import (
	"github.com/11090815/hypernum/vars"
)

// ModInverse 求 x 在模 |m| 下的逆元，结果落在 [0, |m|) 内。
//
// 用迭代的辗转相除代替递归：每一轮只保留最近两个系数 p、商 q 与余数 r，余数变为 0 时，
// 最后一个非零余数必须是 1，否则 x 与 m 不互素，返回 vars.ErrorNoInverseExists。
// m 为 0 时返回 vars.ErrorInvalidArgument，|m| 为 1 时结果为 0。
func (x Integer) ModInverse(m Integer) (Integer, error) {
	if m.IsZero() {
		return Zero, vars.ErrorInvalidArgument{Operation: "ModInverse", Reason: "zero modulus"}
	}

	mod := m.Abs()
	if mod.Equal(One) {
		return Zero, nil
	}

	v := x.Mod(mod)
	switch {
	case v.IsZero():
		return Zero, vars.ErrorNoInverseExists{Value: x.String(), Modulus: m.String()}
	case v.Equal(One):
		return One, nil
	}

	p := [2]Integer{Zero, One}
	q := [2]Integer{Zero, Zero}
	r := [2]Integer{Zero, Zero}
	a, b := mod, v
	for step := 0; !b.IsZero(); step++ {
		if step > 1 {
			p[0], p[1] = p[1], p[0].Sub(p[1].Mul(q[0])).Mod(mod)
		}
		quot, rem := a.QuoRem(b)
		q[0], q[1] = q[1], quot
		r[0], r[1] = r[1], rem
		a, b = b, rem
	}

	if !r[0].Equal(One) {
		logger.Debugf("%s and %s are not coprime, the last non-zero remainder is %s.", x, m, r[0])
		return Zero, vars.ErrorNoInverseExists{Value: x.String(), Modulus: m.String()}
	}
	return p[0].Sub(p[1].Mul(q[0])).Mod(mod), nil
}
