package calc

import (
	"fmt"
	"sort"

	"github.com/11090815/hypernum/common/numerics"
	"github.com/11090815/hypernum/vars"
)

// MaxShift 移位运算允许的最大位数，避免一个 token 就申请出巨大的内存。
const MaxShift = 1 << 24

// operation 从栈顶弹出 arity 个操作数（args[0] 是最早入栈的那个），把 apply 的结果依次压回栈中。
type operation struct {
	name  string
	arity int
	apply func(args []numerics.Integer) ([]numerics.Integer, error)
}

func unary(name string, f func(x numerics.Integer) numerics.Integer) operation {
	return operation{name: name, arity: 1, apply: func(args []numerics.Integer) ([]numerics.Integer, error) {
		return []numerics.Integer{f(args[0])}, nil
	}}
}

func binary(name string, f func(x, y numerics.Integer) numerics.Integer) operation {
	return operation{name: name, arity: 2, apply: func(args []numerics.Integer) ([]numerics.Integer, error) {
		return []numerics.Integer{f(args[0], args[1])}, nil
	}}
}

func shift(name string, f func(x numerics.Integer, n uint) numerics.Integer) operation {
	return operation{name: name, arity: 2, apply: func(args []numerics.Integer) ([]numerics.Integer, error) {
		n, err := smallNonNegative(name, args[1], MaxShift)
		if err != nil {
			return nil, err
		}
		return []numerics.Integer{f(args[0], n)}, nil
	}}
}

func smallNonNegative(op string, x numerics.Integer, limit uint64) (uint, error) {
	if x.Sign() < 0 || !x.IsUint64() || x.Uint64() > limit {
		return 0, vars.ErrorInvalidArgument{Operation: op, Reason: fmt.Sprintf("%s is not in [0, %d]", x, limit)}
	}
	return uint(x.Uint64()), nil
}

var operations = map[string]operation{
	"+":      binary("add", numerics.Integer.Add),
	"-":      binary("sub", numerics.Integer.Sub),
	"*":      binary("mul", numerics.Integer.Mul),
	"/":      binary("div", numerics.Integer.Div),
	"%":      binary("mod", numerics.Integer.Mod),
	"quo":    binary("quo", numerics.Integer.Quo),
	"rem":    binary("rem", numerics.Integer.Rem),
	"&":      binary("and", numerics.Integer.And),
	"|":      binary("or", numerics.Integer.Or),
	"^":      binary("xor", numerics.Integer.Xor),
	"andnot": binary("andnot", numerics.Integer.AndNot),
	"cmp": binary("cmp", func(x, y numerics.Integer) numerics.Integer {
		return numerics.NewInt(int64(x.Cmp(y)))
	}),

	"neg": unary("neg", numerics.Integer.Neg),
	"abs": unary("abs", numerics.Integer.Abs),
	"inc": unary("inc", numerics.Integer.Inc),
	"dec": unary("dec", numerics.Integer.Dec),
	"not": unary("not", numerics.Integer.Not),

	"<<": shift("lsh", numerics.Integer.Lsh),
	">>": shift("rsh", numerics.Integer.Rsh),

	"divmod": {name: "divmod", arity: 2, apply: func(args []numerics.Integer) ([]numerics.Integer, error) {
		q, r := args[0].DivMod(args[1])
		return []numerics.Integer{q, r}, nil
	}},
	"pow": {name: "pow", arity: 2, apply: func(args []numerics.Integer) ([]numerics.Integer, error) {
		e, err := smallNonNegative("pow", args[1], 1<<16)
		if err != nil {
			return nil, err
		}
		return []numerics.Integer{args[0].Pow(e)}, nil
	}},
	"modpow": {name: "modpow", arity: 3, apply: func(args []numerics.Integer) ([]numerics.Integer, error) {
		r, err := args[0].ModPow(args[1], args[2])
		if err != nil {
			return nil, err
		}
		return []numerics.Integer{r}, nil
	}},
	"modinv": {name: "modinv", arity: 2, apply: func(args []numerics.Integer) ([]numerics.Integer, error) {
		r, err := args[0].ModInverse(args[1])
		if err != nil {
			return nil, err
		}
		return []numerics.Integer{r}, nil
	}},
	"sqrt": {name: "sqrt", arity: 1, apply: func(args []numerics.Integer) ([]numerics.Integer, error) {
		r, err := args[0].Sqrt()
		if err != nil {
			return nil, err
		}
		return []numerics.Integer{r}, nil
	}},

	"dup": {name: "dup", arity: 1, apply: func(args []numerics.Integer) ([]numerics.Integer, error) {
		return []numerics.Integer{args[0], args[0]}, nil
	}},
	"drop": {name: "drop", arity: 1, apply: func(args []numerics.Integer) ([]numerics.Integer, error) {
		return nil, nil
	}},
	"swap": {name: "swap", arity: 2, apply: func(args []numerics.Integer) ([]numerics.Integer, error) {
		return []numerics.Integer{args[1], args[0]}, nil
	}},
}

// Operators 返回所有支持的运算符。
func Operators() []string {
	ops := make([]string, 0, len(operations))
	for token := range operations {
		ops = append(ops, token)
	}
	sort.Strings(ops)
	return ops
}
