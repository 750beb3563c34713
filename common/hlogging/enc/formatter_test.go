package enc_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/11090815/hypernum/common/hlogging/enc"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseFormat(t *testing.T) {
	formatters, err := enc.ParseFormat("%{color:bold}[%{module}]%{color:reset} %{time:2006-01-02} %{level:.4s} -> %{message}")
	require.NoError(t, err)
	require.Len(t, formatters, 11)

	entry := zapcore.Entry{
		Level:      zapcore.WarnLevel,
		Time:       time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC),
		LoggerName: "numerics",
		Message:    "no inverse\n",
	}

	buf := &bytes.Buffer{}
	enc.NewMultiFormatter(formatters...).Format(buf, entry, nil)
	require.Equal(t, "\x1b[33;1m[numerics]\x1b[0m 2023-06-01 WARN -> no inverse", buf.String())
}

func TestParseFormatErrors(t *testing.T) {
	_, err := enc.ParseFormat("%{color:blink}")
	require.Error(t, err)

	_, err = enc.NewFormatter("nonsense", "")
	require.Error(t, err)

	// 不认识的 verb 不会被正则匹配，原样输出
	formatters, err := enc.ParseFormat("%{unknown}")
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	formatters[0].Format(buf, zapcore.Entry{}, nil)
	require.Equal(t, "%{unknown}", buf.String())
}

func TestSequenceFormatter(t *testing.T) {
	f, err := enc.NewFormatter("id", "")
	require.NoError(t, err)

	first, second := &bytes.Buffer{}, &bytes.Buffer{}
	f.Format(first, zapcore.Entry{}, nil)
	f.Format(second, zapcore.Entry{}, nil)
	require.NotEqual(t, first.String(), second.String())
}

func TestFuncFormatterUnknownCaller(t *testing.T) {
	f, err := enc.NewFormatter("shortfunc", "")
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	f.Format(buf, zapcore.Entry{}, nil)
	require.Equal(t, "(unknown)", buf.String())
}

func TestSetFormatters(t *testing.T) {
	mf := enc.NewMultiFormatter()
	buf := &bytes.Buffer{}
	mf.Format(buf, zapcore.Entry{Message: "m"}, nil)
	require.Empty(t, buf.String())

	formatters, err := enc.ParseFormat("%{message}!")
	require.NoError(t, err)
	mf.SetFormatters(formatters)
	mf.Format(buf, zapcore.Entry{Message: "m"}, nil)
	require.Equal(t, "m!", buf.String())
}
