package hlogging

import "fmt"

// Global 进程内共享的日志实例。各个包在包级变量里通过 MustGetLogger 取 logger，
// 之后 bigcalc 加载配置文件时再用 Init 调整格式和等级，已经取到的 logger 会立即生效。
var Global *Logging

func init() {
	logging, err := NewLogging(Config{})
	if err != nil {
		// SpecEnv 中的等级规格不合法时退回到默认等级，不让一个环境变量导致进程无法启动
		logging, _ = NewLogging(Config{LogSpec: defaultLevel.String()})
		logging.Logger("hlogging").Warnf("Ignoring %s: %s.", SpecEnv, err)
	}
	Global = logging
}

// Init 用 config 替换全局日志的格式、等级和输出位置。
func Init(config Config) error {
	if err := Global.Apply(config); err != nil {
		return fmt.Errorf("failed initializing global logging: %w", err)
	}
	return nil
}

// Reset 恢复成进程启动时的配置。
func Reset() {
	if err := Global.Apply(Config{}); err != nil {
		Global.Apply(Config{LogSpec: defaultLevel.String()})
	}
}

// LoggerLevel 返回 loggerName 当前生效的日志等级，例如 "debug"。
func LoggerLevel(loggerName string) string {
	return Global.Level(loggerName).String()
}

// ActivateSpec spec 的格式：logger1,logger2=level:logger3=level:level，最后一个不带 logger 的 level 为默认等级。
func ActivateSpec(spec string) error {
	return Global.ActivateSpec(spec)
}

// Observe 在全局日志上挂载 o，返回的函数把观察者恢复成挂载之前的值。
func Observe(o Observer) (restore func()) {
	previous := Global.SetObserver(o)
	return func() { Global.SetObserver(previous) }
}

// MustGetLogger loggerName 是用 . 分隔的若干段，每段由字母、数字以及 _ # : - 组成，不合法时 panic。
func MustGetLogger(loggerName string) *Logger {
	return Global.Logger(loggerName)
}
