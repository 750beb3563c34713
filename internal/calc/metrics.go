package calc

import "github.com/11090815/hypernum/common/metrics"

var (
	OperationsOpts = metrics.CounterOpts{
		Namespace:    "hypernum",
		Subsystem:    "calc",
		Name:         "operations",
		Help:         "The number of operators applied, by operator name.",
		LabelNames:   []string{"op"},
		StatsdFormat: "%{#fqname}.%{op}",
	}

	ErrorsOpts = metrics.CounterOpts{
		Namespace:    "hypernum",
		Subsystem:    "calc",
		Name:         "errors",
		Help:         "The number of tokens that failed to evaluate, by operator name.",
		LabelNames:   []string{"op"},
		StatsdFormat: "%{#fqname}.%{op}",
	}

	EvalDurationOpts = metrics.HistogramOpts{
		Namespace: "hypernum",
		Subsystem: "calc",
		Name:      "eval_duration",
		Help:      "Time it takes to evaluate an expression in seconds.",
		Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
	}

	StackDepthOpts = metrics.GaugeOpts{
		Namespace: "hypernum",
		Subsystem: "calc",
		Name:      "stack_depth",
		Help:      "Depth of the evaluation stack after the last expression.",
	}
)

type Metrics struct {
	Operations   metrics.Counter
	Errors       metrics.Counter
	EvalDuration metrics.Histogram
	StackDepth   metrics.Gauge
}

func NewMetrics(p metrics.Provider) *Metrics {
	return &Metrics{
		Operations:   p.NewCounter(OperationsOpts),
		Errors:       p.NewCounter(ErrorsOpts),
		EvalDuration: p.NewHistogram(EvalDurationOpts),
		StackDepth:   p.NewGauge(StackDepthOpts),
	}
}
