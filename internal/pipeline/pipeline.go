// internal/pipeline/pipeline.go
// Package pipeline runs locate, decode, build, aggregate and emit over a
// results directory.
package pipeline

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/mwiater/flowstats/internal/chart"
	"github.com/mwiater/flowstats/internal/measure"
	"github.com/mwiater/flowstats/internal/results"
	"github.com/mwiater/flowstats/internal/series"
	"github.com/mwiater/flowstats/internal/stats"
)

// Options configures one run.
type Options struct {
	// Trials is the number of result files per input size.
	Trials int
	// Kinds restricts the run; empty means every metric kind.
	Kinds      []measure.MetricKind
	Lenient    bool
	SortGroups bool
	Classifier results.Classifier
}

// Pipeline turns a results directory into plot requests.
type Pipeline struct {
	locator *results.Locator
	builder *series.Builder
	agg     stats.Aggregator
	kinds   []measure.MetricKind
	log     logrus.FieldLogger
}

// New returns a Pipeline reading result files from dir on fs.
func New(fs afero.Fs, dir string, opts Options, log logrus.FieldLogger) *Pipeline {
	kinds := opts.Kinds
	if len(kinds) == 0 {
		kinds = measure.MetricKinds
	}
	return &Pipeline{
		locator: results.NewLocator(fs, dir, opts.Classifier),
		builder: series.NewBuilder(fs, dir, opts.Classifier, opts.Lenient, log),
		agg:     stats.Aggregator{Trials: opts.Trials, SortGroups: opts.SortGroups},
		kinds:   kinds,
		log:     log,
	}
}

// Plan builds every plot request without writing anything: per metric
// kind, sparse then dense, each in algorithm order. Any error aborts the
// whole plan.
func (p *Pipeline) Plan() ([]chart.PlotRequest, error) {
	if p.agg.Trials <= 0 {
		return nil, fmt.Errorf("trial count must be positive, got %d", p.agg.Trials)
	}
	var reqs []chart.PlotRequest
	for _, kind := range p.kinds {
		part, err := p.locator.Locate(kind)
		if err != nil {
			return nil, err
		}
		p.log.WithFields(logrus.Fields{
			"kind":   kind,
			"sparse": len(part.Sparse),
			"dense":  len(part.Dense),
		}).Info("located result files")

		for _, regime := range measure.Regimes {
			set, err := p.builder.Build(kind, regime, part.Files(regime))
			if err != nil {
				return nil, err
			}
			sums, err := p.agg.Summarize(set)
			if err != nil {
				return nil, err
			}
			for _, s := range sums {
				reqs = append(reqs, chart.NewRequest(kind, regime, set.Constant, s))
			}
		}
	}
	return reqs, nil
}

// Run plans every request and hands each one to e. Nothing is emitted
// unless planning succeeds.
func (p *Pipeline) Run(e chart.Emitter) ([]chart.PlotRequest, error) {
	reqs, err := p.Plan()
	if err != nil {
		return nil, err
	}
	for _, req := range reqs {
		if err := e.Emit(req); err != nil {
			return reqs, fmt.Errorf("emitting %s: %w", req.Name, err)
		}
	}
	return reqs, nil
}
