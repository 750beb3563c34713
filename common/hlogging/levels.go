package hlogging

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

const DisabledLevel = zapcore.Level(math.MinInt8)

var loggerNameRegexp = regexp.MustCompile(`^[[:alnum:]_#:-]+(\.[[:alnum:]_#:-]+)*$`)

// LoggerLevels 维护 logger 名到日志等级的映射，logger 名形如 aaa.bbb.ccc，子 logger 继承父 logger 的等级。
type LoggerLevels struct {
	mutex        sync.RWMutex
	levelCache   map[string]zapcore.Level
	specs        map[string]zapcore.Level
	defaultLevel zapcore.Level
	minLevel     zapcore.Level
}

func (ll *LoggerLevels) DefaultLevel() zapcore.Level {
	ll.mutex.RLock()
	defer ll.mutex.RUnlock()
	return ll.defaultLevel
}

// ActivateSpec 接收的 spec 格式为 logger1,logger2=level:logger3=level:level。
func (ll *LoggerLevels) ActivateSpec(spec string) error {
	defaultLevel := zapcore.InfoLevel
	specs := make(map[string]zapcore.Level)

	for _, field := range strings.Split(spec, ":") {
		split := strings.Split(field, "=")
		switch len(split) {
		case 1: // level
			if field != "" && !IsValidLevel(field) {
				return fmt.Errorf("invalid logging specification '%s': bad segment '%s'", spec, field)
			}
			defaultLevel = NameToLevel(field)
		case 2: // logger1,logger2=level
			if split[0] == "" {
				return fmt.Errorf("invalid logging specification '%s': no logger specified in segment '%s'", spec, field)
			}
			if !IsValidLevel(split[1]) {
				return fmt.Errorf("invalid logging specification '%s': bad segment '%s'", spec, field)
			}
			level := NameToLevel(split[1])
			for _, logger := range strings.Split(split[0], ",") {
				if !isValidLoggerName(strings.TrimSuffix(logger, ".")) {
					return fmt.Errorf("invalid logging specification '%s': bad logger name '%s'", spec, logger)
				}
				specs[logger] = level
			}
		default:
			return fmt.Errorf("invalid logging specification '%s': bad segment '%s'", spec, field)
		}
	}

	minLevel := defaultLevel
	for _, lvl := range specs {
		if lvl < minLevel {
			minLevel = lvl
		}
	}

	ll.mutex.Lock()
	defer ll.mutex.Unlock()
	ll.minLevel = minLevel
	ll.defaultLevel = defaultLevel
	ll.specs = specs
	ll.levelCache = make(map[string]zapcore.Level)
	return nil
}

// Level 先查缓存，查不到时沿着 logger 名逐级向上寻找，例如 aaa.bbb.ccc 会依次尝试 aaa.bbb.ccc、aaa.bbb、aaa。
func (ll *LoggerLevels) Level(loggerName string) zapcore.Level {
	ll.mutex.RLock()
	lvl, ok := ll.levelCache[loggerName]
	ll.mutex.RUnlock()
	if ok {
		return lvl
	}

	ll.mutex.Lock()
	defer ll.mutex.Unlock()
	level := ll.calculateLevel(loggerName)
	if ll.levelCache == nil {
		ll.levelCache = make(map[string]zapcore.Level)
	}
	ll.levelCache[loggerName] = level
	return level
}

func (ll *LoggerLevels) calculateLevel(loggerName string) zapcore.Level {
	candidate := loggerName + "."
	for {
		if lvl, ok := ll.specs[candidate]; ok {
			return lvl
		}

		idx := strings.LastIndex(candidate, ".")
		if idx < 0 {
			return ll.defaultLevel
		}
		candidate = candidate[:idx]
	}
}

func (ll *LoggerLevels) Spec() string {
	ll.mutex.RLock()
	defer ll.mutex.RUnlock()

	var fields []string
	for k, v := range ll.specs {
		fields = append(fields, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(fields)
	fields = append(fields, ll.defaultLevel.String())

	return strings.Join(fields, ":")
}

// Enabled 只要有任意一个 logger 可能输出该等级的日志，就返回 true。
func (ll *LoggerLevels) Enabled(lvl zapcore.Level) bool {
	ll.mutex.RLock()
	defer ll.mutex.RUnlock()
	return ll.minLevel.Enabled(lvl)
}

/*** 🐋 ***/

// NameToLevel 未知的日志等级按 InfoLevel 处理。
func NameToLevel(level string) zapcore.Level {
	l, err := nameToLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

func nameToLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	case "panic":
		return zapcore.PanicLevel, nil
	default:
		return DisabledLevel, fmt.Errorf("unknown log level: %s", level)
	}
}

func IsValidLevel(level string) bool {
	_, err := nameToLevel(level)
	return err == nil
}

func isValidLoggerName(loggerName string) bool {
	return loggerNameRegexp.MatchString(loggerName)
}
