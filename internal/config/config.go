// internal/config/config.go
// Package config resolves run settings from flags and an optional config
// file through viper.
package config

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/mwiater/flowstats/internal/chart"
	"github.com/mwiater/flowstats/internal/measure"
	"github.com/mwiater/flowstats/internal/pipeline"
	"github.com/mwiater/flowstats/internal/results"
)

// Viper keys.
const (
	KeyConfig       = "config"
	KeyResultsDir   = "results_dir"
	KeyOutputDir    = "output_dir"
	KeyFormat       = "format"
	KeyKind         = "kind"
	KeyMarker       = "regime_marker"
	KeyMarkedRegime = "marked_regime"
	KeyLenient      = "lenient"
	KeySortGroups   = "sort_groups"
	KeyDebug        = "debug"
)

// Defaults mirror the layout produced by the test runner.
var Defaults = map[string]any{
	KeyResultsDir:   "generator/graphs/results",
	KeyOutputDir:    "plots",
	KeyFormat:       "pdf",
	KeyKind:         "all",
	KeyMarker:       "max",
	KeyMarkedRegime: "sparse",
	KeyLenient:      false,
	KeySortGroups:   true,
	KeyDebug:        false,
}

// Config is the resolved configuration of one invocation.
type Config struct {
	ResultsDir string               `json:"results_dir"`
	OutputDir  string               `json:"output_dir"`
	Format     string               `json:"format"`
	Kinds      []measure.MetricKind `json:"kinds"`
	Classifier results.Classifier   `json:"classifier"`
	Lenient    bool                 `json:"lenient"`
	SortGroups bool                 `json:"sort_groups"`
	Debug      bool                 `json:"debug"`
}

// SetDefaults registers Defaults on v.
func SetDefaults(v *viper.Viper) {
	for k, d := range Defaults {
		v.SetDefault(k, d)
	}
}

// Load reads the config file named by KeyConfig, if any, and resolves v.
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := Config{
		ResultsDir: v.GetString(KeyResultsDir),
		OutputDir:  v.GetString(KeyOutputDir),
		Format:     strings.ToLower(v.GetString(KeyFormat)),
		Lenient:    v.GetBool(KeyLenient),
		SortGroups: v.GetBool(KeySortGroups),
		Debug:      v.GetBool(KeyDebug),
	}
	if cfg.ResultsDir == "" {
		return cfg, fmt.Errorf("%s must not be empty", KeyResultsDir)
	}
	if !slices.Contains(chart.Formats, cfg.Format) {
		return cfg, fmt.Errorf("unsupported %s %q (want one of %v)", KeyFormat, cfg.Format, chart.Formats)
	}

	kind := v.GetString(KeyKind)
	if kind == "" || strings.EqualFold(kind, "all") {
		cfg.Kinds = measure.MetricKinds
	} else {
		k, err := measure.ParseMetricKind(kind)
		if err != nil {
			return cfg, err
		}
		cfg.Kinds = []measure.MetricKind{k}
	}

	marked, err := measure.ParseRegime(v.GetString(KeyMarkedRegime))
	if err != nil {
		return cfg, err
	}
	cfg.Classifier = results.Classifier{Marker: v.GetString(KeyMarker), Marked: marked}
	if cfg.Classifier.Marker == "" {
		return cfg, fmt.Errorf("%s must not be empty", KeyMarker)
	}
	return cfg, nil
}

// NewLogger returns the logger used by every command.
func NewLogger(out io.Writer, debug bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// PipelineOptions returns the pipeline settings for a run over trials
// files per input size.
func (c Config) PipelineOptions(trials int) pipeline.Options {
	return pipeline.Options{
		Trials:     trials,
		Kinds:      c.Kinds,
		Lenient:    c.Lenient,
		SortGroups: c.SortGroups,
		Classifier: c.Classifier,
	}
}
