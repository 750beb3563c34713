package numerics

// Add 根据符号与绝对值的大小关系选择加法或减法，保证 subMag 的被减数总是不小于减数。
func (x Integer) Add(y Integer) Integer {
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs == 0:
		return newInteger(ys, y.words())
	case ys == 0:
		return newInteger(xs, x.words())
	case xs == ys:
		return newInteger(xs, addMag(x.words(), y.words()))
	}

	switch cmpMag(x.words(), y.words()) {
	case 1:
		return newInteger(xs, subMag(x.words(), y.words()))
	case -1:
		return newInteger(ys, subMag(y.words(), x.words()))
	default:
		return Zero
	}
}

func (x Integer) Sub(y Integer) Integer {
	return x.Add(y.Neg())
}

func (x Integer) Mul(y Integer) Integer {
	if x.IsZero() || y.IsZero() {
		return Zero
	}
	return newInteger(x.Sign()*y.Sign(), mulMag(x.words(), y.words()))
}

func (x Integer) Neg() Integer {
	return newInteger(-x.Sign(), x.words())
}

func (x Integer) Abs() Integer {
	return newInteger(1, x.words())
}

func (x Integer) Inc() Integer {
	return x.Add(One)
}

func (x Integer) Dec() Integer {
	return x.Sub(One)
}

// Pow 计算 x^e，e 为 0 时结果为 1（包括 0^0）。
func (x Integer) Pow(e uint) Integer {
	result := One
	base := x
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		if e > 1 {
			base = base.Mul(base)
		}
	}
	return result
}
