package hlogging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewZapLogger(core zapcore.Core, options ...zap.Option) *zap.Logger {
	return zap.New(core, append([]zap.Option{zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)}, options...)...)
}

// Logger 是对 zap.SugaredLogger 的简单包装，调用栈跳过一层，使 %{shortfunc} 指向真正的调用者。
type Logger struct {
	s *zap.SugaredLogger
}

func NewLogger(l *zap.Logger, options ...zap.Option) *Logger {
	return &Logger{
		s: l.WithOptions(append(options, zap.AddCallerSkip(1))...).Sugar(),
	}
}

func (l *Logger) Debug(args ...interface{})                   { l.s.Debug(formatArgs(args)) }
func (l *Logger) Debugf(template string, args ...interface{}) { l.s.Debugf(template, args...) }
func (l *Logger) Debugw(msg string, kvs ...interface{})       { l.s.Debugw(msg, kvs...) }

func (l *Logger) Info(args ...interface{})                   { l.s.Info(formatArgs(args)) }
func (l *Logger) Infof(template string, args ...interface{}) { l.s.Infof(template, args...) }
func (l *Logger) Infow(msg string, kvs ...interface{})       { l.s.Infow(msg, kvs...) }

func (l *Logger) Warn(args ...interface{})                   { l.s.Warn(formatArgs(args)) }
func (l *Logger) Warnf(template string, args ...interface{}) { l.s.Warnf(template, args...) }
func (l *Logger) Warnw(msg string, kvs ...interface{})       { l.s.Warnw(msg, kvs...) }

func (l *Logger) Error(args ...interface{})                   { l.s.Error(formatArgs(args)) }
func (l *Logger) Errorf(template string, args ...interface{}) { l.s.Errorf(template, args...) }
func (l *Logger) Errorw(msg string, kvs ...interface{})       { l.s.Errorw(msg, kvs...) }

func (l *Logger) Panicf(template string, args ...interface{}) { l.s.Panicf(template, args...) }

func (l *Logger) IsEnabledFor(level zapcore.Level) bool {
	return l.s.Desugar().Core().Enabled(level)
}

func (l *Logger) With(args ...interface{}) *Logger {
	return &Logger{s: l.s.With(args...)}
}

func (l *Logger) Named(name string) *Logger {
	return &Logger{s: l.s.Named(name)}
}

func (l *Logger) Zap() *zap.Logger {
	return l.s.Desugar()
}

func formatArgs(args []interface{}) string {
	return fmt.Sprint(args...)
}
