package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/opgraph/dataset"
	"github.com/katalvlaran/opgraph/export"
	"github.com/katalvlaran/opgraph/features"
	"github.com/katalvlaran/opgraph/internal/metrics"
	"github.com/katalvlaran/opgraph/pipeline"
	"github.com/katalvlaran/opgraph/results"
)

func (a *app) openDataset() (*dataset.Provider, error) {
	return dataset.Open(a.cfg.Dataset.Root,
		dataset.WithMaxSamples(a.cfg.Dataset.MaxSamples),
		dataset.WithFamilies(a.cfg.Dataset.Families...),
	)
}

// finish writes metrics and reports err through the logger.
func (a *app) finish(m *metrics.Metrics, err error) error {
	if werr := m.WriteTextfile(a.cfg.Output.Metrics); werr != nil {
		a.log.Warn("metrics textfile not written", zap.String("path", a.cfg.Output.Metrics), zap.Error(werr))
	}
	if err != nil {
		a.log.Error("command failed", zap.Error(err))
	}

	return err
}

func newFamiliesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "Merge each family's samples and write one feature row per (family, node)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			m := metrics.New()
			src, err := a.openDataset()
			if err != nil {
				return a.finish(m, err)
			}
			table, err := pipeline.Run(ctx, pipeline.FromConfig(a.cfg, m), src)
			if err != nil {
				return a.finish(m, err)
			}
			if err = export.WriteFile(a.cfg.Output.Features, table); err != nil {
				return a.finish(m, err)
			}
			a.log.Info("features written", zap.String("path", a.cfg.Output.Features), zap.Int("rows", table.Len()))

			return a.finish(m, nil)
		},
	}
}

func newSamplesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "Write one feature CSV per sample under <output>/<family>/<id>.csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			m := metrics.New()
			src, err := a.openDataset()
			if err != nil {
				return a.finish(m, err)
			}

			dir := a.cfg.Output.Features
			sink := pipeline.SampleSinkFunc(func(family, id string, t *features.Table) error {
				res, err := results.Collect([]*features.Table{t}, []string{family})
				if err != nil {
					return err
				}
				return export.WriteFile(filepath.Join(dir, family, id+".csv"), res)
			})

			return a.finish(m, pipeline.RunSamples(ctx, pipeline.FromConfig(a.cfg, m), src, sink))
		},
	}
}

func newSampleCmd(a *app) *cobra.Command {
	var family string
	cmd := &cobra.Command{
		Use:   "sample <file>",
		Short: "Print the features of one opcode file as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := dataset.ReadSequence(args[0])
			if err != nil {
				return a.finish(nil, err)
			}
			id := trimExt(filepath.Base(args[0]))
			t, err := pipeline.Sample(cmd.Context(), pipeline.FromConfig(a.cfg, nil), family, id, seq)
			if err != nil {
				return a.finish(nil, err)
			}
			res, err := results.Collect([]*features.Table{t}, []string{family})
			if err != nil {
				return a.finish(nil, err)
			}
			if cmd.Flags().Changed("output") {
				return a.finish(nil, export.WriteFile(a.cfg.Output.Features, res))
			}
			if err = export.WriteCSV(cmd.OutOrStdout(), res); err != nil {
				return a.finish(nil, fmt.Errorf("opgraph: %w", err))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&family, "family", "unknown", "family label for the output rows")

	return cmd
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
