package hlogging

import "go.uber.org/zap/zapcore"

type Encoding int8

const (
	CONSOLE Encoding = iota
	JSON
	LOGFMT
)

type EncodingSelector interface {
	Encoding() Encoding
}

// Observer 在日志条目被检查与写出时得到通知，例如用来统计日志数量。
type Observer interface {
	Check(e zapcore.Entry, ce *zapcore.CheckedEntry)
	WriteEntry(e zapcore.Entry, fields []zapcore.Field)
}

// core 为每一种编码方式各准备一个 encoder，写日志时由 Selector 决定用哪一个。
type core struct {
	zapcore.LevelEnabler
	Levels   *LoggerLevels
	Encoders map[Encoding]zapcore.Encoder
	Selector EncodingSelector
	Output   zapcore.WriteSyncer
	Observer Observer
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	clones := make(map[Encoding]zapcore.Encoder, len(c.Encoders))
	for encoding, e := range c.Encoders {
		clone := e.Clone()
		for i := range fields {
			fields[i].AddTo(clone)
		}
		clones[encoding] = clone
	}

	return &core{
		LevelEnabler: c.LevelEnabler,
		Levels:       c.Levels,
		Encoders:     clones,
		Selector:     c.Selector,
		Output:       c.Output,
		Observer:     c.Observer,
	}
}

func (c *core) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Observer != nil {
		c.Observer.Check(e, ce)
	}

	if c.Enabled(e.Level) && c.Levels.Level(e.LoggerName).Enabled(e.Level) {
		return ce.AddCore(e, c)
	}
	return ce
}

func (c *core) Write(e zapcore.Entry, fields []zapcore.Field) error {
	encoder := c.Encoders[c.Selector.Encoding()]

	buf, err := encoder.EncodeEntry(e, fields)
	if err != nil {
		return err
	}
	_, err = c.Output.Write(buf.Bytes())
	buf.Free()
	if err != nil {
		return err
	}

	if e.Level >= zapcore.PanicLevel {
		c.Sync()
	}

	if c.Observer != nil {
		c.Observer.WriteEntry(e, fields)
	}
	return nil
}

func (c *core) Sync() error {
	return c.Output.Sync()
}
