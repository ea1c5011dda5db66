package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/opgraph/internal/config"
	"github.com/katalvlaran/opgraph/internal/logging"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	envFile    string
	logLevel   string
	logFormat  string
	workers    int
	dataset    string
	output     string
	maxSamples int
	normalized bool
	distances  string
	metrics    string
}

// app is the state a subcommand runs with, prepared by PersistentPreRunE.
type app struct {
	flags globalFlags
	cfg   *config.Config
	log   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "opgraph",
		Short:         "Opcode transition graphs and centrality features",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.flags.configPath, "config", "c", "", "YAML config file")
	f.StringVar(&a.flags.envFile, "env-file", "", "load OPGRAPH_* variables from this .env file")
	f.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&a.flags.logFormat, "log-format", "", "log format: console or json")
	f.IntVarP(&a.flags.workers, "workers", "w", 0, "families processed concurrently")
	f.StringVarP(&a.flags.dataset, "dataset", "d", "", "dataset root directory")
	f.StringVarP(&a.flags.output, "output", "o", "", "output CSV file (families) or directory (samples)")
	f.IntVar(&a.flags.maxSamples, "max-samples", -1, "read at most this many samples per family (0 = all)")
	f.BoolVar(&a.flags.normalized, "normalized", false, "normalize centrality scores")
	f.StringVar(&a.flags.distances, "distances", "", "directory for per-family distance matrices")
	f.StringVar(&a.flags.metrics, "metrics-file", "", "write Prometheus metrics to this textfile")

	root.AddCommand(newFamiliesCmd(a), newSamplesCmd(a), newSampleCmd(a))

	return root
}

// setup loads configuration in precedence order and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if a.flags.envFile != "" {
		if err := config.LoadEnvFile(a.flags.envFile); err != nil {
			return err
		}
	}
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("log-level") {
		cfg.Log.Level = a.flags.logLevel
	}
	if f.Changed("log-format") {
		cfg.Log.Format = a.flags.logFormat
	}
	if f.Changed("workers") {
		cfg.Workers = a.flags.workers
	}
	if f.Changed("dataset") {
		cfg.Dataset.Root = a.flags.dataset
	}
	if f.Changed("output") {
		cfg.Output.Features = a.flags.output
	}
	if f.Changed("max-samples") {
		cfg.Dataset.MaxSamples = a.flags.maxSamples
	}
	if f.Changed("normalized") {
		cfg.Features.Normalized = a.flags.normalized
	}
	if f.Changed("distances") {
		cfg.Output.Distances = a.flags.distances
	}
	if f.Changed("metrics-file") {
		cfg.Output.Metrics = a.flags.metrics
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("opgraph: %w", err)
	}
	a.cfg, a.log = cfg, log
	cmd.SetContext(logging.WithLogger(contextOf(cmd), log))

	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
