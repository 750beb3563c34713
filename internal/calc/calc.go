package calc

import (
	"context"
	"strings"
	"time"

	"github.com/11090815/hypernum/common/hlogging"
	"github.com/11090815/hypernum/common/metrics"
	"github.com/11090815/hypernum/common/metrics/disabled"
	"github.com/11090815/hypernum/common/numerics"
	"github.com/11090815/hypernum/vars"
)

const literalLabel = "literal"

// Calculator 逆波兰表达式求值器，token 之间用空白字符分隔。
//
// 整数字面量支持十进制以及 0x、0b、0o 前缀，负号写在最前面，例如 -0xff。每次 Eval 使用一个新的栈，
// Calculator 本身不保存求值状态，可以被多个 goroutine 同时使用。
type Calculator struct {
	metrics *Metrics
	logger  *hlogging.Logger
}

// NewCalculator provider 为空时不采集指标。
func NewCalculator(provider metrics.Provider) *Calculator {
	if provider == nil {
		provider = &disabled.Provider{}
	}
	return &Calculator{
		metrics: NewMetrics(provider),
		logger:  hlogging.MustGetLogger("calc"),
	}
}

// Eval 对 expr 求值并返回最终的栈，栈底在前。ctx 被取消时在下一个 token 之前停止求值。
func (c *Calculator) Eval(ctx context.Context, expr string) ([]numerics.Integer, error) {
	start := time.Now()
	defer func() {
		c.metrics.EvalDuration.Observe(time.Since(start).Seconds())
	}()

	var stack []numerics.Integer
	for _, token := range strings.Fields(expr) {
		if err := ctx.Err(); err != nil {
			return nil, vars.WrapPathError(err)
		}

		var err error
		if stack, err = c.step(stack, token); err != nil {
			c.logger.Debugf("Failed evaluating token %q of expression \"%s\": %s.", token, expr, err)
			return nil, vars.WrapPathError(err)
		}
	}

	c.metrics.StackDepth.Set(float64(len(stack)))
	c.logger.Debugf("Evaluated expression \"%s\", %d value(s) left on the stack.", expr, len(stack))
	return stack, nil
}

// EvalOne 与 Eval 相同，但要求求值结束后栈上恰好剩下一个值。
func (c *Calculator) EvalOne(ctx context.Context, expr string) (numerics.Integer, error) {
	stack, err := c.Eval(ctx, expr)
	if err != nil {
		return numerics.Zero, err
	}
	if len(stack) != 1 {
		return numerics.Zero, vars.WrapPathError(vars.ErrorInvalidArgument{
			Operation: "EvalOne",
			Reason:    "expression must leave exactly one value on the stack",
		})
	}
	return stack[0], nil
}

// Apply 把单个运算符作用在 operands 上，operands 按入栈顺序排列，返回运算后的栈。
func (c *Calculator) Apply(ctx context.Context, token string, operands ...numerics.Integer) ([]numerics.Integer, error) {
	if _, ok := operations[token]; !ok {
		return nil, vars.WrapPathError(vars.ErrorUnknownToken{Token: token})
	}
	if err := ctx.Err(); err != nil {
		return nil, vars.WrapPathError(err)
	}

	start := time.Now()
	defer func() {
		c.metrics.EvalDuration.Observe(time.Since(start).Seconds())
	}()

	stack := make([]numerics.Integer, len(operands))
	copy(stack, operands)
	stack, err := c.step(stack, token)
	if err != nil {
		c.logger.Debugf("Failed applying %q to %d operand(s): %s.", token, len(operands), err)
		return nil, vars.WrapPathError(err)
	}

	c.metrics.StackDepth.Set(float64(len(stack)))
	return stack, nil
}

func (c *Calculator) step(stack []numerics.Integer, token string) ([]numerics.Integer, error) {
	op, ok := operations[token]
	if !ok {
		x, err := numerics.ParseLiteral(token)
		if err != nil {
			c.metrics.Errors.With("op", literalLabel).Add(1)
			if looksNumeric(token) {
				return nil, err
			}
			return nil, vars.ErrorUnknownToken{Token: token}
		}
		return append(stack, x), nil
	}

	if len(stack) < op.arity {
		c.metrics.Errors.With("op", op.name).Add(1)
		return nil, vars.ErrorStackUnderflow{Token: token, Need: op.arity, Have: len(stack)}
	}

	base := len(stack) - op.arity
	args := make([]numerics.Integer, op.arity)
	copy(args, stack[base:])

	results, err := op.apply(args)
	if err != nil {
		c.metrics.Errors.With("op", op.name).Add(1)
		return nil, err
	}
	c.metrics.Operations.With("op", op.name).Add(1)

	return append(stack[:base], results...), nil
}

// looksNumeric 以数字开头（允许一个前导负号）的 token 按字面量处理，解析失败时保留具体的格式错误。
func looksNumeric(token string) bool {
	token = strings.TrimPrefix(token, "-")
	return token != "" && token[0] >= '0' && token[0] <= '9'
}
