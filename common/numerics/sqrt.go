package numerics

import (
	"fmt"

	"github.com/11090815/hypernum/vars"
)

// Sqrt 返回 floor(sqrt(x))，从高位到低位逐位试探，只有平方不超过 x 时才保留该位。
func (x Integer) Sqrt() (Integer, error) {
	if x.Sign() < 0 {
		return Zero, vars.ErrorInvalidArgument{Operation: "Sqrt", Reason: fmt.Sprintf("negative operand %s", x)}
	}

	target := x.words()
	var root []uint32
	for i := (bitLenMag(target) + 1) / 2; i >= 0; i-- {
		candidate := setBitMag(root, uint(i), 1)
		if cmpMag(mulMag(candidate, candidate), target) <= 0 {
			root = candidate
		}
	}
	return newInteger(1, root), nil
}
