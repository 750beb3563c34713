package disabled_test

import (
	"testing"

	"github.com/11090815/hypernum/common/metrics"
	"github.com/11090815/hypernum/common/metrics/disabled"
	"github.com/stretchr/testify/require"
)

func TestDisabledProvider(t *testing.T) {
	var p metrics.Provider = &disabled.Provider{}

	require.NotPanics(t, func() {
		p.NewCounter(metrics.CounterOpts{LabelNames: []string{"op"}}).With("op", "+").Add(1)
		p.NewGauge(metrics.GaugeOpts{}).With().Set(1)
		p.NewHistogram(metrics.HistogramOpts{}).With("x", "y", "z").Observe(1)
	})
}
