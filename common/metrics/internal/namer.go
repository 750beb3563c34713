package internal

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/11090815/hypernum/common/metrics"
)

// Namer 根据 StatsdFormat 生成 statsd 指标名。
//
// 格式中的 %{#namespace}、%{#subsystem}、%{#name}、%{#fqname} 在构造时就被展开成常量片段，
// 其余 %{label} 在 Format 时用标签值替换。格式里出现未声明的标签时构造函数直接 panic，
// 不会等到第一次上报指标才暴露问题。
type Namer struct {
	namespace  string
	subsystem  string
	name       string
	labelNames []string
	declared   map[string]struct{}
	segments   []segment
}

// segment 要么是常量文本，要么是一个待替换的标签。
type segment struct {
	text  string
	label string
}

func NewCounterNamer(opts metrics.CounterOpts) *Namer {
	return newNamer(opts.Namespace, opts.Subsystem, opts.Name, opts.StatsdFormat, opts.LabelNames)
}

func NewGaugeNamer(opts metrics.GaugeOpts) *Namer {
	return newNamer(opts.Namespace, opts.Subsystem, opts.Name, opts.StatsdFormat, opts.LabelNames)
}

func NewHistogramNamer(opts metrics.HistogramOpts) *Namer {
	return newNamer(opts.Namespace, opts.Subsystem, opts.Name, opts.StatsdFormat, opts.LabelNames)
}

var (
	formatRegexp            = regexp.MustCompile(`%{([#?[:alnum:]_]+)}`)
	invalidLabelValueRegexp = regexp.MustCompile(`[.|:\s]`)
)

func newNamer(namespace, subsystem, name, format string, labelNames []string) *Namer {
	n := &Namer{
		namespace:  namespace,
		subsystem:  subsystem,
		name:       name,
		labelNames: labelNames,
		declared:   make(map[string]struct{}, len(labelNames)),
	}
	for _, label := range labelNames {
		n.declared[label] = struct{}{}
	}
	n.segments = n.compile(format)
	return n
}

func (n *Namer) compile(format string) []segment {
	var segments []segment
	appendText := func(text string) {
		if text == "" {
			return
		}
		// 相邻的常量片段合并成一个
		if last := len(segments) - 1; last >= 0 && segments[last].label == "" {
			segments[last].text += text
			return
		}
		segments = append(segments, segment{text: text})
	}

	cursor := 0
	for _, m := range formatRegexp.FindAllStringSubmatchIndex(format, -1) {
		appendText(format[cursor:m[0]])
		cursor = m[1]

		switch key := format[m[2]:m[3]]; key {
		case "#namespace":
			appendText(n.namespace)
		case "#subsystem":
			appendText(n.subsystem)
		case "#name":
			appendText(n.name)
		case "#fqname":
			appendText(n.FullyQualifiedName())
		default:
			if _, ok := n.declared[key]; !ok {
				panic(fmt.Sprintf("statsd format %q of %s references undeclared label %q", format, n.FullyQualifiedName(), key))
			}
			segments = append(segments, segment{label: key})
		}
	}
	appendText(format[cursor:])

	return segments
}

// Format labelValues 形如 "k1", "v1", "k2", "v2"，最后一个 key 缺少取值时记为 unknown。
// 传入未声明的 key，或者格式需要的标签没有提供时 panic。
func (n *Namer) Format(labelValues ...string) string {
	labels := make(map[string]string, (len(labelValues)+1)/2)
	for i := 0; i < len(labelValues); i += 2 {
		key := labelValues[i]
		if _, ok := n.declared[key]; !ok {
			panic("invalid label key: " + key)
		}
		value := "unknown"
		if i+1 < len(labelValues) {
			value = labelValues[i+1]
		}
		labels[key] = invalidLabelValueRegexp.ReplaceAllString(value, "_")
	}

	var sb strings.Builder
	for _, seg := range n.segments {
		if seg.label == "" {
			sb.WriteString(seg.text)
			continue
		}
		value, ok := labels[seg.label]
		if !ok {
			panic(fmt.Sprintf("missing value for label %q of %s", seg.label, n.FullyQualifiedName()))
		}
		sb.WriteString(value)
	}
	return sb.String()
}

// LabelNames 返回声明过的标签名，顺序与 opts 中一致。
func (n *Namer) LabelNames() []string {
	return n.labelNames
}

func (n *Namer) FullyQualifiedName() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{n.namespace, n.subsystem, n.name} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ".")
}
