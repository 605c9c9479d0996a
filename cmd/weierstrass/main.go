package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartcontractkit/weierstrass/internal/config"
	"github.com/smartcontractkit/weierstrass/internal/engine"
	"github.com/smartcontractkit/weierstrass/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds what the subcommands share. It is populated by the root command before any subcommand runs.
type app struct {
	viper    *viper.Viper
	config   *config.Config
	logger   *logger.Logger
	registry *prometheus.Registry
	engine   *engine.Engine
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{viper: config.NewViper()}
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "weierstrass",
		Short:         "Affine point arithmetic on short Weierstrass curves",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, configFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.logMetrics()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "path of a YAML, JSON or TOML configuration file")
	flags.String("curve", config.DefaultCurve, "curve to operate on, see the curves command")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.Bool("log-json", false, "emit log lines as JSON")
	_ = a.viper.BindPFlag(config.KeyCurve, flags.Lookup("curve"))
	_ = a.viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.viper.BindPFlag(config.KeyLogJSON, flags.Lookup("log-json"))

	rootCmd.AddCommand(
		a.curvesCmd(),
		a.generatorCmd(),
		a.multiplyCmd(),
		a.addCmd(),
		a.negateCmd(),
		a.equalCmd(),
		a.selfCheckCmd(),
	)
	return rootCmd, a
}

// setup loads the configuration and builds the engine. Configuration errors are fatal: no arithmetic runs without
// exactly one valid curve.
func (a *app) setup(cmd *cobra.Command, configFile string) error {
	conf, err := config.Load(a.viper, configFile)
	if err != nil {
		bootstrap, lerr := logger.New(cmd.ErrOrStderr(), "info", false)
		if lerr == nil {
			bootstrap.Critical("invalid configuration", logger.Fields{"error": err.Error()})
		}
		return err
	}
	c, err := conf.SelectCurve()
	if err != nil {
		return err
	}

	lggr, err := logger.New(cmd.ErrOrStderr(), conf.Log.Level, conf.Log.JSON)
	if err != nil {
		return errors.Wrap(err, "configuring logger")
	}
	registry := prometheus.NewRegistry()
	e, err := engine.New(c, lggr, registry)
	if err != nil {
		return errors.Wrap(err, "creating engine")
	}

	a.config, a.logger, a.registry, a.engine = conf, lggr, registry, e
	lggr.Debug("configured", logger.Fields{"curve": c.Name(), "command": cmd.Name()})
	return nil
}

// logMetrics writes the collected operation counters at debug level.
func (a *app) logMetrics() {
	if a.registry == nil {
		return
	}
	families, err := a.registry.Gather()
	if err != nil {
		a.logger.Warn("gathering metrics failed", logger.Fields{"error": err.Error()})
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			fields := logger.Fields{}
			for _, label := range metric.GetLabel() {
				fields[label.GetName()] = label.GetValue()
			}
			switch {
			case metric.GetCounter() != nil:
				fields["value"] = metric.GetCounter().GetValue()
			case metric.GetHistogram() != nil:
				fields["count"] = metric.GetHistogram().GetSampleCount()
				fields["sum"] = metric.GetHistogram().GetSampleSum()
			}
			a.logger.Debug(family.GetName(), fields)
		}
	}
}

func main() {
	rootCmd, _ := newRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}
