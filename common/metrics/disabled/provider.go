package disabled

import "github.com/11090815/hypernum/common/metrics"

// Provider 创建的指标丢弃所有观测值，用于关闭指标统计的场景。
type Provider struct{}

func (p *Provider) NewCounter(metrics.CounterOpts) metrics.Counter       { return &Counter{} }
func (p *Provider) NewGauge(metrics.GaugeOpts) metrics.Gauge             { return &Gauge{} }
func (p *Provider) NewHistogram(metrics.HistogramOpts) metrics.Histogram { return &Histogram{} }

type Counter struct{}

func (c *Counter) Add(float64)                    {}
func (c *Counter) With(...string) metrics.Counter { return c }

type Gauge struct{}

func (g *Gauge) Add(float64)                  {}
func (g *Gauge) Set(float64)                  {}
func (g *Gauge) With(...string) metrics.Gauge { return g }

type Histogram struct{}

func (h *Histogram) Observe(float64)                  {}
func (h *Histogram) With(...string) metrics.Histogram { return h }
