package hlogging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/11090815/hypernum/common/hlogging/enc"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultFormat = "%{color:bold}%{level:.4s}%{color:reset} %{color}%{time:2006-01-02 15:04:05.000}%{color:reset} [%{module}] %{color}%{shortfunc}%{color:reset} -> %{message}"
	defaultLevel  = zapcore.InfoLevel

	// SpecEnv 未在 Config 中指定 LogSpec 时，从该环境变量读取日志等级规格。
	SpecEnv = "HYPERNUM_LOGGING_SPEC"

	// consoleValueLimit 控制台格式下字符串字段的最大长度，足够容纳一个 1024 位整数的十进制表示。
	consoleValueLimit = 320
)

type Config struct {
	// Format 可以是 "json"、"logfmt"，或者由 %{verb} 组成的控制台格式，为空时使用 DefaultFormat。
	Format  string
	LogSpec string
	Writer  io.Writer
}

type Logging struct {
	*LoggerLevels
	mutex          sync.RWMutex
	encoding       Encoding
	encoderConfig  zapcore.EncoderConfig
	multiFormatter *enc.MultiFormatter
	writer         zapcore.WriteSyncer
	observer       Observer
}

func NewLogging(c Config) (*Logging, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"

	l := &Logging{
		LoggerLevels:   &LoggerLevels{defaultLevel: defaultLevel},
		encoderConfig:  encoderConfig,
		multiFormatter: enc.NewMultiFormatter(),
	}

	if err := l.Apply(c); err != nil {
		return nil, err
	}
	return l, nil
}

// Apply 依次设置格式、日志等级规格与输出位置。
func (l *Logging) Apply(c Config) error {
	if err := l.SetFormat(c.Format); err != nil {
		return err
	}

	if c.LogSpec == "" {
		c.LogSpec = os.Getenv(SpecEnv)
	}
	if c.LogSpec == "" {
		c.LogSpec = defaultLevel.String()
	}
	if err := l.LoggerLevels.ActivateSpec(c.LogSpec); err != nil {
		return err
	}

	if c.Writer == nil {
		c.Writer = os.Stderr
	}
	l.SetWriter(c.Writer)

	return nil
}

func (l *Logging) SetFormat(format string) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	switch format {
	case "":
		format = DefaultFormat
	case "json":
		l.encoding = JSON
		return nil
	case "logfmt":
		l.encoding = LOGFMT
		return nil
	}

	formatters, err := enc.ParseFormat(format)
	if err != nil {
		return err
	}
	l.multiFormatter.SetFormatters(formatters)
	l.encoding = CONSOLE

	return nil
}

// SetWriter 替换日志的输出位置，返回之前的输出位置。
func (l *Logging) SetWriter(w io.Writer) io.Writer {
	var ws zapcore.WriteSyncer
	switch t := w.(type) {
	case *os.File:
		ws = zapcore.Lock(t) // *os.File 在并发写之前必须加锁
	case zapcore.WriteSyncer:
		ws = t
	default:
		ws = zapcore.AddSync(w)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	old := l.writer
	l.writer = ws
	return old
}

func (l *Logging) SetObserver(o Observer) Observer {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	old := l.observer
	l.observer = o
	return old
}

func (l *Logging) Encoding() Encoding {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.encoding
}

func (l *Logging) Write(b []byte) (int, error) {
	l.mutex.RLock()
	w := l.writer
	l.mutex.RUnlock()
	return w.Write(b)
}

func (l *Logging) Sync() error {
	l.mutex.RLock()
	w := l.writer
	l.mutex.RUnlock()
	return w.Sync()
}

func (l *Logging) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) {
	l.mutex.RLock()
	o := l.observer
	l.mutex.RUnlock()

	if o != nil {
		o.Check(e, ce)
	}
}

func (l *Logging) WriteEntry(e zapcore.Entry, fields []zapcore.Field) {
	l.mutex.RLock()
	o := l.observer
	l.mutex.RUnlock()

	if o != nil {
		o.WriteEntry(e, fields)
	}
}

func (l *Logging) ZapLogger(name string) *zap.Logger {
	if !isValidLoggerName(name) {
		panic(fmt.Sprintf("invalid logger name: %s", name))
	}

	l.mutex.RLock()
	c := &core{
		LevelEnabler: l.LoggerLevels,
		Levels:       l.LoggerLevels,
		Encoders: map[Encoding]zapcore.Encoder{
			JSON:    zapcore.NewJSONEncoder(l.encoderConfig),
			CONSOLE: enc.NewFormatEncoder([]enc.Formatter{l.multiFormatter}, enc.WithValueLimit(consoleValueLimit)),
			LOGFMT:  zaplogfmt.NewEncoder(l.encoderConfig),
		},
		Selector: l,
		Output:   l,
		Observer: l,
	}
	l.mutex.RUnlock()

	return NewZapLogger(c).Named(name)
}

func (l *Logging) Logger(name string) *Logger {
	return NewLogger(l.ZapLogger(name))
}
