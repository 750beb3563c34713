package statsd

import (
	"fmt"
	"io"
	"sync"

	"github.com/11090815/hypernum/common/metrics"
	"github.com/11090815/hypernum/common/metrics/internal"
	"github.com/go-kit/kit/metrics/statsd"
	"github.com/go-kit/log"
)

const defaultFormat = "%{#fqname}"

// Provider 把指标写入 go-kit 的 statsd 缓冲区，由调用方决定何时通过 WriteTo 或 SendLoop 发送出去。
//
// 带标签的指标在调用 With 之前没有对应的 statsd 指标名，直接使用会 panic。同一组标签值只会创建一次
// 底层指标，calc 每执行一个 token 都调用一次 With，不会因此反复分配。
type Provider struct {
	Statsd *statsd.Statsd
}

// NewProvider prefix 原样拼接在每个指标名前面，需要分隔符时自己带上，例如 "node."。
func NewProvider(prefix string, logger log.Logger) *Provider {
	return &Provider{Statsd: statsd.New(prefix, logger)}
}

// WriteTo 以 statsd 行协议输出缓冲区中的指标，写出之后缓冲区被清空。
func (p *Provider) WriteTo(w io.Writer) (int64, error) {
	return p.Statsd.WriteTo(w)
}

func (p *Provider) NewCounter(opts metrics.CounterOpts) metrics.Counter {
	if opts.StatsdFormat == "" {
		opts.StatsdFormat = defaultFormat
	}
	c := &Counter{family: newFamily("counter", p.Statsd, internal.NewCounterNamer(opts))}
	if len(opts.LabelNames) == 0 {
		c.counter = p.Statsd.NewCounter(c.namer.Format(), 1)
	}
	return c
}

func (p *Provider) NewGauge(opts metrics.GaugeOpts) metrics.Gauge {
	if opts.StatsdFormat == "" {
		opts.StatsdFormat = defaultFormat
	}
	g := &Gauge{family: newFamily("gauge", p.Statsd, internal.NewGaugeNamer(opts))}
	if len(opts.LabelNames) == 0 {
		g.gauge = p.Statsd.NewGauge(g.namer.Format())
	}
	return g
}

func (p *Provider) NewHistogram(opts metrics.HistogramOpts) metrics.Histogram {
	if opts.StatsdFormat == "" {
		opts.StatsdFormat = defaultFormat
	}
	h := &Histogram{family: newFamily("histogram", p.Statsd, internal.NewHistogramNamer(opts))}
	if len(opts.LabelNames) == 0 {
		h.timing = p.Statsd.NewTiming(h.namer.Format(), 1)
	}
	return h
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

// family 是同一个指标在不同标签值下的集合，父指标和 With 得到的子指标共享同一个 family。
type family struct {
	kind   string
	statsd *statsd.Statsd
	namer  *internal.Namer

	mutex sync.Mutex
	bound map[string]interface{}
}

func newFamily(kind string, s *statsd.Statsd, namer *internal.Namer) *family {
	return &family{kind: kind, statsd: s, namer: namer, bound: map[string]interface{}{}}
}

// bind 按格式化后的指标名查找已经绑定的子指标，没有时调用 create 创建。
func (f *family) bind(labelValues []string, create func(name string) interface{}) interface{} {
	name := f.namer.Format(labelValues...)

	f.mutex.Lock()
	defer f.mutex.Unlock()
	if m, ok := f.bound[name]; ok {
		return m
	}
	m := create(name)
	f.bound[name] = m
	return m
}

func (f *family) unbound() {
	panic(fmt.Sprintf("statsd %s %s has labels %v, bind them with With before use", f.kind, f.namer.FullyQualifiedName(), f.namer.LabelNames()))
}

/*⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓⛓*/

type Counter struct {
	*family
	counter *statsd.Counter
}

func (c *Counter) With(labelValues ...string) metrics.Counter {
	return c.bind(labelValues, func(name string) interface{} {
		return &Counter{family: c.family, counter: c.statsd.NewCounter(name, 1)}
	}).(*Counter)
}

func (c *Counter) Add(delta float64) {
	if c.counter == nil {
		c.unbound()
	}
	c.counter.Add(delta)
}

type Gauge struct {
	*family
	gauge *statsd.Gauge
}

func (g *Gauge) With(labelValues ...string) metrics.Gauge {
	return g.bind(labelValues, func(name string) interface{} {
		return &Gauge{family: g.family, gauge: g.statsd.NewGauge(name)}
	}).(*Gauge)
}

func (g *Gauge) Add(delta float64) {
	if g.gauge == nil {
		g.unbound()
	}
	g.gauge.Add(delta)
}

func (g *Gauge) Set(value float64) {
	if g.gauge == nil {
		g.unbound()
	}
	g.gauge.Set(value)
}

// Histogram 映射成 statsd 的 timing。Observe 接收的是秒，写出时换算成 statsd 约定的毫秒。
type Histogram struct {
	*family
	timing *statsd.Timing
}

func (h *Histogram) With(labelValues ...string) metrics.Histogram {
	return h.bind(labelValues, func(name string) interface{} {
		return &Histogram{family: h.family, timing: h.statsd.NewTiming(name, 1)}
	}).(*Histogram)
}

func (h *Histogram) Observe(seconds float64) {
	if h.timing == nil {
		h.unbound()
	}
	h.timing.Observe(seconds * 1000)
}
