package enc

import (
	"time"

	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const DefaultTimeLayout = "2006-01-02T15:04:05.000"

// FormatEncoder 控制台编码器：formatters 负责输出日志前缀，附带的字段交给 logfmt 编码后接在前缀后面。
//
// 大整数的十进制串动辄上千个字符，设置了 valueLimit 时，超长的字符串字段只保留首尾各一半。
type FormatEncoder struct {
	zapcore.Encoder
	formatters []Formatter
	pool       buffer.Pool

	timeLayout string
	valueLimit int
}

type EncoderOption func(*FormatEncoder)

// WithTimeLayout 设置字段中 time.Time 值的输出格式。
func WithTimeLayout(layout string) EncoderOption {
	return func(f *FormatEncoder) { f.timeLayout = layout }
}

// WithValueLimit limit 不大于 0 时不截断。
func WithValueLimit(limit int) EncoderOption {
	return func(f *FormatEncoder) { f.valueLimit = limit }
}

func NewFormatEncoder(formatters []Formatter, opts ...EncoderOption) *FormatEncoder {
	f := &FormatEncoder{
		formatters: formatters,
		pool:       buffer.NewPool(),
		timeLayout: DefaultTimeLayout,
	}
	for _, opt := range opts {
		opt(f)
	}

	layout := f.timeLayout
	f.Encoder = zaplogfmt.NewEncoder(zapcore.EncoderConfig{
		LineEnding:     "\n",
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeTime: func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
			pae.AppendString(t.Format(layout))
		},
	})
	return f
}

func (f *FormatEncoder) Clone() zapcore.Encoder {
	clone := *f
	clone.Encoder = f.Encoder.Clone()
	return &clone
}

func (f *FormatEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line := f.pool.Get()
	for _, formatter := range f.formatters {
		formatter.Format(line, entry, fields)
	}

	encoded, err := f.Encoder.EncodeEntry(entry, f.limit(fields))
	if err != nil {
		line.Free()
		return nil, err
	}
	defer encoded.Free()

	// 没有任何字段时 logfmt 只输出一个换行符
	if line.Len() > 0 && encoded.Len() > 1 {
		line.AppendByte(' ')
	}
	line.Write(encoded.Bytes())

	return line, nil
}

// limit 只有确实需要截断时才复制 fields。
func (f *FormatEncoder) limit(fields []zapcore.Field) []zapcore.Field {
	if f.valueLimit <= 0 {
		return fields
	}

	var limited []zapcore.Field
	for i, field := range fields {
		if field.Type != zapcore.StringType || len(field.String) <= f.valueLimit {
			continue
		}
		if limited == nil {
			limited = make([]zapcore.Field, len(fields))
			copy(limited, fields)
		}
		limited[i].String = abbreviate(field.String, f.valueLimit)
	}
	if limited == nil {
		return fields
	}
	return limited
}

// abbreviate 保留 s 的前后各 limit/2 个字符，中间用 ... 连接。
func abbreviate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	keep := limit / 2
	if keep == 0 {
		keep = 1
	}
	return string(runes[:keep]) + "..." + string(runes[len(runes)-keep:])
}
