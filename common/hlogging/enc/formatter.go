package enc

import (
	"fmt"
	"io"
	"regexp"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap/zapcore"
)

// 支持的 verb：%{color} %{id} %{level} %{message} %{module} %{shortfunc} %{longfunc} %{time}，冒号后面是可选的格式参数，
// 例如 %{level:.4s}、%{id:04x}、%{time:2006-01-02}、%{color:bold}。
var formatRegexp = regexp.MustCompile(`%{(color|id|level|message|module|shortfunc|longfunc|time)(?::(.*?))?}`)

// Formatter 把日志条目的某一部分写入 w。
type Formatter interface {
	Format(w io.Writer, entry zapcore.Entry, fields []zapcore.Field)
}

// ParseFormat 把格式字符串拆分成一组 Formatter，verb 之间的普通文本原样输出。
func ParseFormat(spec string) ([]Formatter, error) {
	cursor := 0
	formatters := []Formatter{}

	for _, m := range formatRegexp.FindAllStringSubmatchIndex(spec, -1) {
		start, end := m[0], m[1]
		verbStart, verbEnd := m[2], m[3]
		optStart, optEnd := m[4], m[5]

		if start > cursor {
			formatters = append(formatters, stringFormatter(spec[cursor:start]))
		}

		var option string
		if optStart >= 0 {
			option = spec[optStart:optEnd]
		}

		f, err := NewFormatter(spec[verbStart:verbEnd], option)
		if err != nil {
			return nil, err
		}
		formatters = append(formatters, f)
		cursor = end
	}

	if cursor != len(spec) {
		formatters = append(formatters, stringFormatter(spec[cursor:]))
	}

	return formatters, nil
}

func NewFormatter(verb, option string) (Formatter, error) {
	switch verb {
	case "color":
		return newColorFormatter(option)
	case "id":
		return sequenceFormatter("%" + orDefault(option, "d")), nil
	case "level":
		return levelFormatter("%" + orDefault(option, "s")), nil
	case "message":
		return messageFormatter("%" + orDefault(option, "s")), nil
	case "module":
		return moduleFormatter("%" + orDefault(option, "s")), nil
	case "shortfunc":
		return funcFormatter{verb: "%" + orDefault(option, "s")}, nil
	case "longfunc":
		return funcFormatter{verb: "%" + orDefault(option, "s"), long: true}, nil
	case "time":
		return timeFormatter(orDefault(option, "2006-01-02T15:04:05.000")), nil
	default:
		return nil, fmt.Errorf("unknown verb: %s", verb)
	}
}

/*** 🐋 ***/

type MultiFormatter struct {
	mutex      sync.RWMutex
	formatters []Formatter
}

func NewMultiFormatter(formatters ...Formatter) *MultiFormatter {
	return &MultiFormatter{formatters: formatters}
}

func (mf *MultiFormatter) Format(w io.Writer, entry zapcore.Entry, fields []zapcore.Field) {
	mf.mutex.RLock()
	defer mf.mutex.RUnlock()
	for _, f := range mf.formatters {
		f.Format(w, entry, fields)
	}
}

func (mf *MultiFormatter) SetFormatters(formatters []Formatter) {
	mf.mutex.Lock()
	defer mf.mutex.Unlock()
	mf.formatters = formatters
}

/*** 🐋 ***/

type stringFormatter string

func (sf stringFormatter) Format(w io.Writer, _ zapcore.Entry, _ []zapcore.Field) {
	io.WriteString(w, string(sf))
}

type colorFormatter struct {
	bold  bool
	reset bool
}

func newColorFormatter(option string) (colorFormatter, error) {
	switch option {
	case "bold":
		return colorFormatter{bold: true}, nil
	case "reset":
		return colorFormatter{reset: true}, nil
	case "":
		return colorFormatter{}, nil
	default:
		return colorFormatter{}, fmt.Errorf("invalid color option: %s", option)
	}
}

func (cf colorFormatter) Format(w io.Writer, entry zapcore.Entry, _ []zapcore.Field) {
	switch {
	case cf.reset:
		io.WriteString(w, ResetColor())
	case cf.bold:
		io.WriteString(w, LevelColor(entry.Level).Bold())
	default:
		io.WriteString(w, LevelColor(entry.Level).Normal())
	}
}

type levelFormatter string

func (lf levelFormatter) Format(w io.Writer, entry zapcore.Entry, _ []zapcore.Field) {
	fmt.Fprintf(w, string(lf), entry.Level.CapitalString())
}

type messageFormatter string

func (mf messageFormatter) Format(w io.Writer, entry zapcore.Entry, _ []zapcore.Field) {
	fmt.Fprintf(w, string(mf), strings.TrimRight(entry.Message, "\n"))
}

type moduleFormatter string

func (mf moduleFormatter) Format(w io.Writer, entry zapcore.Entry, _ []zapcore.Field) {
	fmt.Fprintf(w, string(mf), entry.LoggerName)
}

var sequence uint64

type sequenceFormatter string

func (sf sequenceFormatter) Format(w io.Writer, _ zapcore.Entry, _ []zapcore.Field) {
	fmt.Fprintf(w, string(sf), atomic.AddUint64(&sequence, 1))
}

type funcFormatter struct {
	verb string
	long bool
}

func (ff funcFormatter) Format(w io.Writer, entry zapcore.Entry, _ []zapcore.Field) {
	f := runtime.FuncForPC(entry.Caller.PC)
	if f == nil {
		fmt.Fprintf(w, ff.verb, "(unknown)")
		return
	}

	name := f.Name()
	if !ff.long {
		name = name[strings.LastIndex(name, ".")+1:]
	}
	fmt.Fprintf(w, ff.verb, name)
}

type timeFormatter string

func (tf timeFormatter) Format(w io.Writer, entry zapcore.Entry, _ []zapcore.Field) {
	io.WriteString(w, entry.Time.Format(string(tf)))
}

func orDefault(s, dflt string) string {
	if s != "" {
		return s
	}
	return dflt
}
