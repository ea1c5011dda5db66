package pipeline

import (
	"github.com/katalvlaran/opgraph/features"
	"github.com/katalvlaran/opgraph/internal/config"
	"github.com/katalvlaran/opgraph/internal/metrics"
)

// FromConfig maps the loaded run configuration onto a pipeline Config.
func FromConfig(c *config.Config, m *metrics.Metrics) Config {
	return Config{
		Workers: c.Workers,
		Features: []features.Option{
			features.WithNormalized(c.Features.Normalized),
			features.WithEigenMaxIterations(c.Features.EigenMaxIterations),
			features.WithEigenTolerance(c.Features.EigenTolerance),
		},
		DistancesDir: c.Output.Distances,
		Metrics:      m,
	}
}
