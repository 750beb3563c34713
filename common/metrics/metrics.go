package metrics

/*
	Provider 负责创建三类指标：

	1. Counter（计数器）：只增不减，用于统计运算次数、失败次数等。
	2. Gauge（仪表盘）：可增可减，用于记录求值栈深度等瞬时值。
	3. Histogram（直方图）：统计数据分布，用于记录单次运算耗时。

	同一套指标定义可以交给 prometheus、statsd 或 disabled 三种 Provider 实现。
*/

type Provider interface {
	NewCounter(CounterOpts) Counter
	NewGauge(GaugeOpts) Gauge
	NewHistogram(HistogramOpts) Histogram
}

type Counter interface {
	// With 按 "k1", "v1", "k2", "v2" 的形式绑定标签值，返回绑定后的 Counter。
	With(labelValues ...string) Counter
	Add(delta float64)
}

type CounterOpts struct {
	Namespace  string
	Subsystem  string
	Name       string
	Help       string
	LabelNames []string
	LabelHelp  map[string]string
	// StatsdFormat 决定 statsd 指标名的拼接方式，例如 "%{#fqname}.%{op}"。
	StatsdFormat string
}

type Gauge interface {
	With(labelValues ...string) Gauge
	Add(delta float64)
	Set(value float64)
}

type GaugeOpts struct {
	Namespace    string
	Subsystem    string
	Name         string
	Help         string
	LabelNames   []string
	LabelHelp    map[string]string
	StatsdFormat string
}

type Histogram interface {
	With(labelValues ...string) Histogram
	Observe(value float64)
}

type HistogramOpts struct {
	Namespace    string
	Subsystem    string
	Name         string
	Help         string
	Buckets      []float64
	LabelNames   []string
	LabelHelp    map[string]string
	StatsdFormat string
}
