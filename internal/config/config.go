package config

import (
	"fmt"
	"os"

	"github.com/11090815/hypernum/common/hlogging"
	"github.com/11090815/hypernum/common/numerics"
	"github.com/11090815/hypernum/vars"
	"gopkg.in/yaml.v3"
)

const (
	ProviderDisabled   = "disabled"
	ProviderPrometheus = "prometheus"
	ProviderStatsd     = "statsd"

	DefaultRadix        = 10
	DefaultMetricPrefix = ""
)

var logger = hlogging.MustGetLogger("config")

// Config bigcalc 的配置文件，例如：
//
//	logging:
//	  format: json
//	  spec: calc=debug:info
//	metrics:
//	  provider: statsd
//	  prefix: node1.
//	calc:
//	  radix: 16
//	  modulus: 0xFFFFFFFB
//
// 文件中没有出现的键保持默认值。
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Calc    CalcConfig    `yaml:"calc"`
}

type LoggingConfig struct {
	// Format 可以是 "json"、"logfmt" 或者控制台格式串，为空时使用 hlogging.DefaultFormat。
	Format string `yaml:"format"`
	// Spec 日志等级规格，为空时读取环境变量 HYPERNUM_LOGGING_SPEC。
	Spec string `yaml:"spec"`
}

type MetricsConfig struct {
	// Provider 取值为 disabled、prometheus 或 statsd。
	Provider string `yaml:"provider"`
	// Prefix 原样拼接在 statsd 指标名之前，例如 "node1."。
	Prefix string `yaml:"prefix"`
}

type CalcConfig struct {
	// Radix 输出结果时使用的进制，取值范围 [2, 36]。
	Radix int `yaml:"radix"`
	// Modulus modpow 与 modinv 在命令行没有给出模数时使用的默认模数，0 表示没有默认模数。
	Modulus numerics.Integer `yaml:"modulus"`
}

func Default() Config {
	return Config{
		Metrics: MetricsConfig{
			Provider: ProviderDisabled,
			Prefix:   DefaultMetricPrefix,
		},
		Calc: CalcConfig{
			Radix:   DefaultRadix,
			Modulus: numerics.Zero,
		},
	}
}

// Load 读取并校验 path 处的 YAML 配置文件，path 为空时返回默认配置。
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, vars.WrapPathError(err)
	}

	c, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	logger.Debugf("Loaded configuration from %s: radix=%d, metrics provider=%s.", path, c.Calc.Radix, c.Metrics.Provider)
	return c, nil
}

func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, vars.WrapPathError(err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, vars.WrapPathError(err)
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Calc.Radix < 2 || c.Calc.Radix > 36 {
		return vars.ErrorInvalidArgument{Operation: "config", Reason: fmt.Sprintf("calc.radix %d out of range [2, 36]", c.Calc.Radix)}
	}
	if c.Calc.Modulus.Sign() < 0 {
		return vars.ErrorInvalidArgument{Operation: "config", Reason: fmt.Sprintf("calc.modulus %s is negative", c.Calc.Modulus)}
	}

	switch c.Metrics.Provider {
	case ProviderDisabled, ProviderPrometheus, ProviderStatsd:
	default:
		return vars.ErrorInvalidArgument{Operation: "config", Reason: fmt.Sprintf("unknown metrics.provider %q", c.Metrics.Provider)}
	}

	return nil
}

// Hlogging 转换成 hlogging 能直接使用的配置。
func (lc LoggingConfig) Hlogging() hlogging.Config {
	return hlogging.Config{
		Format:  lc.Format,
		LogSpec: lc.Spec,
	}
}
