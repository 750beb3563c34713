package statsd_test

import (
	"bytes"
	"testing"

	"github.com/11090815/hypernum/common/metrics"
	"github.com/11090815/hypernum/common/metrics/statsd"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	provider := statsd.NewProvider("", log.NewNopLogger())

	counter := provider.NewCounter(metrics.CounterOpts{
		Namespace:    "hypernum",
		Subsystem:    "calc",
		Name:         "operations",
		StatsdFormat: "%{#fqname}.%{op}",
		LabelNames:   []string{"op"},
	})
	require.PanicsWithValue(t, "statsd counter hypernum.calc.operations has labels [op], bind them with With before use", func() { counter.Add(1) })

	counter.With("op", "divmod").Add(2)
	require.Same(t, counter.With("op", "divmod"), counter.With("op", "divmod"))

	buf := &bytes.Buffer{}
	_, err := provider.WriteTo(buf)
	require.NoError(t, err)
	require.Equal(t, "hypernum.calc.operations.divmod:2.000000|c\n", buf.String())
}

func TestGaugeWithPrefix(t *testing.T) {
	provider := statsd.NewProvider("node.", log.NewNopLogger())

	gauge := provider.NewGauge(metrics.GaugeOpts{Namespace: "hypernum", Name: "stack_depth"})
	gauge.Set(5)

	buf := &bytes.Buffer{}
	_, err := provider.WriteTo(buf)
	require.NoError(t, err)
	require.Equal(t, "node.hypernum.stack_depth:5.000000|g\n", buf.String())
}

func TestHistogram(t *testing.T) {
	provider := statsd.NewProvider("", log.NewNopLogger())

	histogram := provider.NewHistogram(metrics.HistogramOpts{
		Namespace:    "hypernum",
		Name:         "duration",
		StatsdFormat: "%{#namespace}.%{#name}-%{op}",
		LabelNames:   []string{"op"},
	})
	histogram.With("op", "sqrt").Observe(1.5)

	buf := &bytes.Buffer{}
	_, err := provider.WriteTo(buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "hypernum.duration-sqrt:1500")
	require.Contains(t, buf.String(), "|ms")
}

func TestWriteToDrainsBuffer(t *testing.T) {
	provider := statsd.NewProvider("", log.NewNopLogger())

	counter := provider.NewCounter(metrics.CounterOpts{Namespace: "hypernum", Name: "evals"})
	counter.Add(1)

	buf := &bytes.Buffer{}
	_, err := provider.WriteTo(buf)
	require.NoError(t, err)
	require.Equal(t, "hypernum.evals:1.000000|c\n", buf.String())

	buf.Reset()
	_, err = provider.WriteTo(buf)
	require.NoError(t, err)
	require.Empty(t, buf.String())
}
