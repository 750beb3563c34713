package commands

import (
	"fmt"
	"os"

	"github.com/11090815/hypernum/common/hlogging"
	hmetrics "github.com/11090815/hypernum/common/hlogging/metrics"
	"github.com/11090815/hypernum/common/metrics"
	"github.com/11090815/hypernum/common/metrics/disabled"
	"github.com/11090815/hypernum/common/metrics/prometheus"
	"github.com/11090815/hypernum/common/metrics/statsd"
	"github.com/11090815/hypernum/common/numerics"
	"github.com/11090815/hypernum/internal/calc"
	"github.com/11090815/hypernum/internal/config"
	"github.com/11090815/hypernum/vars"
	"github.com/go-kit/log"
	goprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

// Version 发布时通过 -ldflags "-X" 覆盖。
var Version = "v0.1.0"

var logger = hlogging.MustGetLogger("bigcalc")

// app 保存一次命令执行过程中共享的状态，由根命令的 PersistentPreRunE 初始化。
type app struct {
	configPath string
	radix      int
	provider   string

	cfg        config.Config
	registry   *goprometheus.Registry
	statsd     *statsd.Provider
	calculator *calc.Calculator

	restoreObserver func()
}

// NewRootCommand 每次调用都返回一棵全新的命令树，方便在测试中重复执行。
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "bigcalc",
		Version:       Version,
		Short:         "bigcalc - arbitrary-precision integer calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.dumpMetrics(cmd)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("bigcalc {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path of the YAML configuration file")
	flags.IntVarP(&a.radix, "radix", "r", 0, "radix of printed results, overrides calc.radix")
	flags.StringVarP(&a.provider, "metrics", "m", "", "metrics provider (disabled, prometheus, statsd), overrides metrics.provider")

	rootCmd.AddCommand(
		a.evalCommand(),
		a.modPowCommand(),
		a.modInverseCommand(),
		a.divModCommand(),
		a.sqrtCommand(),
		a.convertCommand(),
		a.encodeCommand(),
		a.decodeCommand(),
		versionCommand(),
	)

	return rootCmd
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.radix != 0 {
		cfg.Calc.Radix = a.radix
	}
	if a.provider != "" {
		cfg.Metrics.Provider = a.provider
	}
	if err = cfg.Validate(); err != nil {
		return vars.WrapPathError(err)
	}
	a.cfg = cfg

	if err = hlogging.Init(cfg.Logging.Hlogging()); err != nil {
		return vars.WrapPathError(err)
	}

	var provider metrics.Provider
	switch cfg.Metrics.Provider {
	case config.ProviderPrometheus:
		a.registry = goprometheus.NewRegistry()
		provider = prometheus.NewProvider(a.registry)
	case config.ProviderStatsd:
		a.statsd = statsd.NewProvider(cfg.Metrics.Prefix, log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr)))
		provider = a.statsd
	default:
		provider = &disabled.Provider{}
	}
	if cfg.Metrics.Provider != config.ProviderDisabled {
		a.restoreObserver = hlogging.Observe(hmetrics.NewObserver(provider))
	}
	a.calculator = calc.NewCalculator(provider)

	logger.Debugf("Using radix %d and metrics provider %s.", cfg.Calc.Radix, cfg.Metrics.Provider)
	return nil
}

// dumpMetrics 把本次执行采集到的指标写到标准输出，prometheus 使用文本格式，statsd 使用行协议。
func (a *app) dumpMetrics(cmd *cobra.Command) error {
	if a.restoreObserver != nil {
		defer a.restoreObserver()
	}
	out := cmd.OutOrStdout()

	switch {
	case a.registry != nil:
		families, err := a.registry.Gather()
		if err != nil {
			return vars.WrapPathError(err)
		}
		encoder := expfmt.NewEncoder(out, expfmt.FmtText)
		for _, family := range families {
			if err = encoder.Encode(family); err != nil {
				return vars.WrapPathError(err)
			}
		}
	case a.statsd != nil:
		if _, err := a.statsd.WriteTo(out); err != nil {
			return vars.WrapPathError(err)
		}
	}

	return nil
}

func (a *app) print(cmd *cobra.Command, values ...numerics.Integer) {
	for _, x := range values {
		fmt.Fprintln(cmd.OutOrStdout(), x.Text(a.cfg.Calc.Radix))
	}
}

func parseOperands(args []string) ([]numerics.Integer, error) {
	operands := make([]numerics.Integer, len(args))
	for i, arg := range args {
		x, err := numerics.ParseLiteral(arg)
		if err != nil {
			return nil, vars.WrapPathError(err)
		}
		operands[i] = x
	}
	return operands, nil
}
