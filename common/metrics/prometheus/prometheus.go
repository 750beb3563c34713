package prometheus

import (
	"github.com/11090815/hypernum/common/metrics"
	kitmetrics "github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/prometheus"
	goprometheus "github.com/prometheus/client_golang/prometheus"
)

// Provider 把指标注册到 Registerer 上，Registerer 为空时使用 prometheus 的默认注册表。
type Provider struct {
	Registerer goprometheus.Registerer
}

func NewProvider(registerer goprometheus.Registerer) *Provider {
	return &Provider{Registerer: registerer}
}

func (p *Provider) registerer() goprometheus.Registerer {
	if p.Registerer == nil {
		return goprometheus.DefaultRegisterer
	}
	return p.Registerer
}

func (p *Provider) NewCounter(opts metrics.CounterOpts) metrics.Counter {
	cv := goprometheus.NewCounterVec(
		goprometheus.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      opts.Name,
			Help:      opts.Help,
		},
		opts.LabelNames,
	)
	p.registerer().MustRegister(cv)
	return &Counter{Counter: prometheus.NewCounter(cv)}
}

func (p *Provider) NewGauge(opts metrics.GaugeOpts) metrics.Gauge {
	gv := goprometheus.NewGaugeVec(
		goprometheus.GaugeOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      opts.Name,
			Help:      opts.Help,
		},
		opts.LabelNames,
	)
	p.registerer().MustRegister(gv)
	return &Gauge{Gauge: prometheus.NewGauge(gv)}
}

func (p *Provider) NewHistogram(opts metrics.HistogramOpts) metrics.Histogram {
	hv := goprometheus.NewHistogramVec(
		goprometheus.HistogramOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      opts.Name,
			Help:      opts.Help,
			Buckets:   opts.Buckets,
		},
		opts.LabelNames,
	)
	p.registerer().MustRegister(hv)
	return &Histogram{Histogram: prometheus.NewHistogram(hv)}
}

type Counter struct {
	kitmetrics.Counter
}

func (c *Counter) With(labelValues ...string) metrics.Counter {
	return &Counter{Counter: c.Counter.With(labelValues...)}
}

type Gauge struct {
	kitmetrics.Gauge
}

func (g *Gauge) With(labelValues ...string) metrics.Gauge {
	return &Gauge{Gauge: g.Gauge.With(labelValues...)}
}

type Histogram struct {
	kitmetrics.Histogram
}

func (h *Histogram) With(labelValues ...string) metrics.Histogram {
	return &Histogram{Histogram: h.Histogram.With(labelValues...)}
}
