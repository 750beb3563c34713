package calc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/11090815/hypernum/common/metrics/prometheus"
	"github.com/11090815/hypernum/common/numerics"
	"github.com/11090815/hypernum/internal/calc"
	"github.com/11090815/hypernum/vars"
	goprometheus "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func strs(stack []numerics.Integer) []string {
	out := make([]string, len(stack))
	for i, x := range stack {
		out[i] = x.String()
	}
	return out
}

func TestEval(t *testing.T) {
	c := calc.NewCalculator(nil)

	tests := []struct {
		expr     string
		expected []string
	}{
		{"2 3 +", []string{"5"}},
		{"2 3 -", []string{"-1"}},
		{"-7 3 divmod", []string{"-3", "2"}},
		{"-7 3 /", []string{"-3"}},
		{"-7 3 %", []string{"2"}},
		{"-7 3 quo", []string{"-2"}},
		{"-7 3 rem", []string{"-1"}},
		{"5 0 /", []string{"0"}},
		{"4 13 497 modpow", []string{"445"}},
		{"17 3120 modinv", []string{"2753"}},
		{"10 sqrt", []string{"3"}},
		{"2 10 pow", []string{"1024"}},
		{"1 100 <<", []string{"1267650600228229401496703205376"}},
		{"0x100 4 >>", []string{"16"}},
		{"0xff 0b101 &", []string{"5"}},
		{"12 10 |", []string{"14"}},
		{"12 10 ^", []string{"6"}},
		{"12 10 andnot", []string{"4"}},
		{"5 not", []string{"-6"}},
		{"-1 not", []string{"0"}},
		{"-5 neg 5 abs", []string{"5", "5"}},
		{"9 inc 9 dec", []string{"10", "8"}},
		{"2 3 cmp 3 3 cmp", []string{"-1", "0"}},
		{"9 dup *", []string{"81"}},
		{"1 2 drop", []string{"1"}},
		{"3 4 swap -", []string{"1"}},
		{"-0x10 0o17 +", []string{"-1"}},
		{"", []string{}},
	}

	for _, test := range tests {
		stack, err := c.Eval(context.Background(), test.expr)
		require.NoError(t, err, test.expr)
		require.Equal(t, test.expected, strs(stack), test.expr)
	}
}

func TestEvalErrors(t *testing.T) {
	c := calc.NewCalculator(nil)

	_, err := c.Eval(context.Background(), "1 +")
	var underflow vars.ErrorStackUnderflow
	require.ErrorAs(t, err, &underflow)
	require.Equal(t, vars.ErrorStackUnderflow{Token: "+", Need: 2, Have: 1}, underflow)

	_, err = c.Eval(context.Background(), "1 foo")
	var unknown vars.ErrorUnknownToken
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "foo", unknown.Token)

	var format vars.ErrorInvalidFormat
	for _, expr := range []string{"1 0xZZ", "12G", "-0b102"} {
		_, err = c.Eval(context.Background(), expr)
		require.ErrorAs(t, err, &format, expr)
		require.False(t, errors.As(err, &unknown), expr)
	}

	_, err = c.Eval(context.Background(), "- 1")
	require.ErrorAs(t, err, &underflow)

	_, err = c.Eval(context.Background(), "4 8 modinv")
	var noInverse vars.ErrorNoInverseExists
	require.ErrorAs(t, err, &noInverse)

	var invalid vars.ErrorInvalidArgument
	for _, expr := range []string{"-4 sqrt", "1 -1 <<", "1 16777217 <<", "2 3 0 modpow", "2 -1 pow"} {
		_, err = c.Eval(context.Background(), expr)
		require.ErrorAs(t, err, &invalid, expr)
	}

	var pathErr vars.PathError
	require.ErrorAs(t, err, &pathErr)
}

func TestEvalOne(t *testing.T) {
	c := calc.NewCalculator(nil)

	x, err := c.EvalOne(context.Background(), "6 7 *")
	require.NoError(t, err)
	require.Equal(t, "42", x.String())

	_, err = c.EvalOne(context.Background(), "6 7")
	require.Error(t, err)
}

func TestApply(t *testing.T) {
	c := calc.NewCalculator(nil)

	stack, err := c.Apply(context.Background(), "divmod", numerics.NewInt(-7), numerics.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, []string{"-3", "2"}, strs(stack))

	stack, err = c.Apply(context.Background(), "modpow", numerics.NewInt(4), numerics.NewInt(13), numerics.NewInt(497))
	require.NoError(t, err)
	require.Equal(t, []string{"445"}, strs(stack))

	_, err = c.Apply(context.Background(), "42")
	var unknown vars.ErrorUnknownToken
	require.ErrorAs(t, err, &unknown)

	_, err = c.Apply(context.Background(), "sqrt")
	var underflow vars.ErrorStackUnderflow
	require.ErrorAs(t, err, &underflow)
}

func TestEvalCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := calc.NewCalculator(nil).Eval(ctx, "1 2 +")
	require.True(t, errors.Is(err, context.Canceled))
}

func TestOperators(t *testing.T) {
	ops := calc.Operators()
	require.Len(t, ops, 27)
	require.Contains(t, ops, "modpow")
	require.Contains(t, ops, "<<")
}

func TestMetrics(t *testing.T) {
	registry := goprometheus.NewRegistry()
	c := calc.NewCalculator(prometheus.NewProvider(registry))

	_, err := c.Eval(context.Background(), "1 2 + 3 + 4 *")
	require.NoError(t, err)
	_, err = c.Eval(context.Background(), "1 +")
	require.Error(t, err)
	_, err = c.Eval(context.Background(), "bogus")
	require.Error(t, err)

	families, err := registry.Gather()
	require.NoError(t, err)

	byName := map[string]*dto.MetricFamily{}
	for _, family := range families {
		byName[family.GetName()] = family
	}

	counterValues := func(name string) map[string]float64 {
		values := map[string]float64{}
		require.Contains(t, byName, name)
		for _, m := range byName[name].GetMetric() {
			values[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
		}
		return values
	}

	require.Equal(t, map[string]float64{"add": 2, "mul": 1}, counterValues("hypernum_calc_operations"))
	require.Equal(t, map[string]float64{"add": 1, "literal": 1}, counterValues("hypernum_calc_errors"))

	require.Contains(t, byName, "hypernum_calc_eval_duration")
	require.Equal(t, uint64(3), byName["hypernum_calc_eval_duration"].GetMetric()[0].GetHistogram().GetSampleCount())

	require.Contains(t, byName, "hypernum_calc_stack_depth")
	require.Equal(t, 1.0, byName["hypernum_calc_stack_depth"].GetMetric()[0].GetGauge().GetValue())
}
