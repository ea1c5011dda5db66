// Package config loads the opgraph run configuration.
//
// Precedence, lowest first: Default, YAML file, OPGRAPH_* environment
// variables (optionally seeded from a .env file), command-line flags applied
// by the caller. Validate runs last.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "OPGRAPH_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full run configuration.
type Config struct {
	Dataset  DatasetConfig `yaml:"dataset"`
	Output   OutputConfig  `yaml:"output"`
	Features FeatureConfig `yaml:"features"`
	Log      LogConfig     `yaml:"log"`
	Workers  int           `yaml:"workers"`
}

// DatasetConfig locates the samples.
type DatasetConfig struct {
	Root       string   `yaml:"root"`
	Families   []string `yaml:"families,omitempty"`
	MaxSamples int      `yaml:"max_samples"`
}

// OutputConfig names the files a run writes. Empty Distances and Metrics
// disable those outputs.
type OutputConfig struct {
	Features  string `yaml:"features"`
	Distances string `yaml:"distances,omitempty"`
	Metrics   string `yaml:"metrics,omitempty"`
}

// FeatureConfig tunes the feature computation.
type FeatureConfig struct {
	Normalized         bool    `yaml:"normalized"`
	EigenMaxIterations int     `yaml:"eigen_max_iterations"`
	EigenTolerance     float64 `yaml:"eigen_tolerance"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{Root: "data"},
		Output:  OutputConfig{Features: "features.csv"},
		Features: FeatureConfig{
			EigenMaxIterations: 1000,
			EigenTolerance:     1e-6,
		},
		Log:     LogConfig{Level: "info", Format: "console"},
		Workers: runtime.NumCPU(),
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when
// path is empty) and the process environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = cfg.decode(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decode overlays YAML onto cfg, rejecting unknown keys.
func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// LoadEnvFile exports the variables of a .env file into the process
// environment. Variables already set are kept.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: env file %s: %w", path, err)
	}

	return nil
}

// ApplyEnv overlays OPGRAPH_* variables read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("DATASET"); ok {
		c.Dataset.Root = v
	}
	if v, ok := get("FAMILIES"); ok {
		c.Dataset.Families = splitList(v)
	}
	if v, ok := get("OUTPUT"); ok {
		c.Output.Features = v
	}
	if v, ok := get("DISTANCES"); ok {
		c.Output.Distances = v
	}
	if v, ok := get("METRICS_FILE"); ok {
		c.Output.Metrics = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.Log.Format = v
	}

	var err error
	if v, ok := get("MAX_SAMPLES"); ok {
		if c.Dataset.MaxSamples, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("config: %sMAX_SAMPLES: %w", EnvPrefix, err)
		}
	}
	if v, ok := get("WORKERS"); ok {
		if c.Workers, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("config: %sWORKERS: %w", EnvPrefix, err)
		}
	}
	if v, ok := get("NORMALIZED"); ok {
		if c.Features.Normalized, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("config: %sNORMALIZED: %w", EnvPrefix, err)
		}
	}

	return nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	return out
}

// Validate checks required fields and ranges, reporting every problem at once.
func (c *Config) Validate() error {
	var errs []string
	if c.Dataset.Root == "" {
		errs = append(errs, "dataset.root is required")
	}
	if c.Dataset.MaxSamples < 0 {
		errs = append(errs, fmt.Sprintf("dataset.max_samples must be >= 0 (got %d)", c.Dataset.MaxSamples))
	}
	seen := make(map[string]bool, len(c.Dataset.Families))
	for _, f := range c.Dataset.Families {
		if seen[f] {
			errs = append(errs, fmt.Sprintf("dataset.families lists %q twice", f))
		}
		seen[f] = true
	}
	if c.Output.Features == "" {
		errs = append(errs, "output.features is required")
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Sprintf("workers must be >= 1 (got %d)", c.Workers))
	}
	if c.Features.EigenMaxIterations < 1 {
		errs = append(errs, fmt.Sprintf("features.eigen_max_iterations must be >= 1 (got %d)", c.Features.EigenMaxIterations))
	}
	if !(c.Features.EigenTolerance > 0) {
		errs = append(errs, fmt.Sprintf("features.eigen_tolerance must be > 0 (got %v)", c.Features.EigenTolerance))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}

	return nil
}
