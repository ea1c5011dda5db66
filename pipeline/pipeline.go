package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/opgraph/builder"
	"github.com/katalvlaran/opgraph/core"
	"github.com/katalvlaran/opgraph/dataset"
	"github.com/katalvlaran/opgraph/export"
	"github.com/katalvlaran/opgraph/features"
	"github.com/katalvlaran/opgraph/internal/logging"
	"github.com/katalvlaran/opgraph/internal/metrics"
	"github.com/katalvlaran/opgraph/merge"
	"github.com/katalvlaran/opgraph/results"
)

// ErrNoSource is returned when a run has no Source, or RunFamily no samples.
var ErrNoSource = errors.New("pipeline: nil source")

// ErrNoSink is returned when RunSamples is called without a SampleSink.
var ErrNoSink = errors.New("pipeline: nil sample sink")

// Source yields families and their samples.
type Source interface {
	Families() []string
	Samples(family string) (*dataset.FamilySamples, error)
}

// SampleSink receives one featurized sample. Calls are serialized.
type SampleSink interface {
	Put(family, sampleID string, t *features.Table) error
}

// SampleSinkFunc adapts a function to SampleSink.
type SampleSinkFunc func(family, sampleID string, t *features.Table) error

// Put calls f.
func (f SampleSinkFunc) Put(family, sampleID string, t *features.Table) error {
	return f(family, sampleID, t)
}

// Config is everything a run needs besides its Source.
type Config struct {
	// Workers bounds the families processed concurrently (and the samples
	// built concurrently inside one family). Values < 1 mean 1.
	Workers int

	// Features are passed to features.Compute for every table.
	Features []features.Option

	// DistancesDir, if set, receives distances_<family>.csv: the hop-count
	// matrix of each union graph along in-edges.
	DistancesDir string

	// Metrics may be nil.
	Metrics *metrics.Metrics

	// RunID labels every log line; generated when empty.
	RunID string
}

func (c Config) workers() int {
	if c.Workers < 1 {
		return 1
	}

	return c.Workers
}

// FamilyResult is the outcome of one family in family mode.
type FamilyResult struct {
	Family   string
	Samples  int
	Graph    *core.Graph
	Table    *features.Table
	Warnings []features.Warning
}

// Run processes every family of src and returns the collected result table.
// The first family error cancels the remaining families and is returned alone.
func Run(ctx context.Context, cfg Config, src Source) (*results.Table, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	ctx, log := withRun(ctx, &cfg)

	families := src.Families()
	log.Info("run started", zap.Int("families", len(families)), zap.Int("workers", cfg.workers()))
	start := time.Now()

	out := make([]*FamilyResult, len(families))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers())
	for i, family := range families {
		i, family := i, family
		eg.Go(func() error {
			fs, err := src.Samples(family)
			if err != nil {
				return fmt.Errorf("pipeline: family %q: %w", family, err)
			}
			res, err := RunFamily(egCtx, cfg, fs)
			if err != nil {
				return err
			}
			out[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Error("run failed", zap.Error(err))
		return nil, err
	}

	tables := make([]*features.Table, len(out))
	for i, r := range out {
		tables[i] = r.Table
	}
	table, err := results.Collect(tables, families)
	if err != nil {
		return nil, err
	}
	log.Info("run finished", zap.Int("rows", table.Len()), zap.Duration("elapsed", time.Since(start)))

	return table, nil
}

// RunFamily builds, merges and featurizes one family. It logs through the
// logger carried by ctx.
func RunFamily(ctx context.Context, cfg Config, fs *dataset.FamilySamples) (*FamilyResult, error) {
	if fs == nil {
		return nil, ErrNoSource
	}
	log := logging.FromContext(ctx).With(zap.String("family", fs.Family))
	start := time.Now()

	graphs, err := builder.Family(ctx, fs.Sequences, builder.WithWorkers(cfg.workers()))
	if err != nil {
		return nil, fmt.Errorf("pipeline: family %q: %w", fs.Family, err)
	}
	cfg.Metrics.SampleBuilt(len(graphs))

	union, err := merge.Merge(graphs...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: family %q: %w", fs.Family, err)
	}
	log.Debug("family merged",
		zap.Int("samples", len(graphs)),
		zap.Int("vertices", union.VertexCount()),
		zap.Int("edges", union.EdgeCount()),
	)

	table, warnings, err := features.Compute(ctx, union, union.Unweighted(), cfg.Features...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: family %q: %w", fs.Family, err)
	}
	report(log, cfg.Metrics, warnings)

	if cfg.DistancesDir != "" {
		if err = writeDistances(cfg.DistancesDir, fs.Family, union); err != nil {
			return nil, err
		}
	}

	cfg.Metrics.FamilyDone(time.Since(start), table.NullCount())
	log.Info("family done",
		zap.Int("samples", len(graphs)),
		zap.Int("vertices", union.VertexCount()),
		zap.Int("warnings", len(warnings)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &FamilyResult{
		Family:   fs.Family,
		Samples:  len(graphs),
		Graph:    union,
		Table:    table,
		Warnings: warnings,
	}, nil
}

// RunSamples featurizes every sample of src on its own graph and hands each
// table to sink. Families run concurrently; sink calls are serialized.
func RunSamples(ctx context.Context, cfg Config, src Source, sink SampleSink) error {
	if src == nil {
		return ErrNoSource
	}
	if sink == nil {
		return ErrNoSink
	}
	ctx, log := withRun(ctx, &cfg)

	families := src.Families()
	log.Info("sample run started", zap.Int("families", len(families)))

	var mu sync.Mutex
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers())
	for _, family := range families {
		family := family
		eg.Go(func() error {
			fs, err := src.Samples(family)
			if err != nil {
				return fmt.Errorf("pipeline: family %q: %w", family, err)
			}
			for i, seq := range fs.Sequences {
				t, err := Sample(egCtx, cfg, fs.Family, fs.IDs[i], seq)
				if err != nil {
					return err
				}
				mu.Lock()
				err = sink.Put(fs.Family, fs.IDs[i], t)
				mu.Unlock()
				if err != nil {
					return fmt.Errorf("pipeline: sink %s/%s: %w", fs.Family, fs.IDs[i], err)
				}
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Error("sample run failed", zap.Error(err))
		return err
	}
	log.Info("sample run finished")

	return nil
}

// Sample featurizes a single opcode sequence.
func Sample(ctx context.Context, cfg Config, family, id string, seq []string) (*features.Table, error) {
	log := logging.FromContext(ctx).With(zap.String("family", family), zap.String("sample", id))

	g, err := builder.Sequence(seq)
	if err != nil {
		return nil, fmt.Errorf("pipeline: sample %s/%s: %w", family, id, err)
	}
	cfg.Metrics.SampleBuilt(1)

	t, warnings, err := features.Compute(ctx, g, g.Unweighted(), cfg.Features...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: sample %s/%s: %w", family, id, err)
	}
	report(log, cfg.Metrics, warnings)
	log.Debug("sample done", zap.Int("vertices", g.VertexCount()), zap.Int("edges", g.EdgeCount()))

	return t, nil
}

// withRun assigns a run id if needed and returns ctx carrying a logger tagged with it.
func withRun(ctx context.Context, cfg *Config) (context.Context, *zap.Logger) {
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}
	log := logging.FromContext(ctx).With(zap.String("run_id", cfg.RunID))

	return logging.WithLogger(ctx, log), log
}

func report(log *zap.Logger, m *metrics.Metrics, warnings []features.Warning) {
	for _, w := range warnings {
		m.Warning(w.Column)
		log.Warn("feature column left null", zap.String("column", w.Column), zap.Error(w.Err))
	}
}

func writeDistances(dir, family string, g *core.Graph) error {
	m, err := features.DistanceMatrix(g, core.In)
	if err != nil {
		return fmt.Errorf("pipeline: family %q: %w", family, err)
	}
	path := filepath.Join(dir, "distances_"+family+".csv")
	if err = export.WriteDistancesFile(path, g.Vertices(), m); err != nil {
		return fmt.Errorf("pipeline: family %q: %w", family, err)
	}

	return nil
}
