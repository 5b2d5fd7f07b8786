// internal/series/builder.go
// Package series accumulates decoded result files into one size-ordered
// series per algorithm.
package series

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/mwiater/flowstats/internal/measure"
	"github.com/mwiater/flowstats/internal/results"
)

// ErrNoInputFiles is returned when a regime has nothing to aggregate.
var ErrNoInputFiles = errors.New("no input files found")

// Point is one (n, value) coordinate contributed by one file.
type Point struct {
	N     int   `json:"n"`
	Value int64 `json:"value"`
}

// AlgorithmSeries is every point measured for one algorithm.
type AlgorithmSeries struct {
	Algorithm measure.Algorithm `json:"algorithm"`
	Points    []Point           `json:"points"`
}

// Len returns the number of points.
func (s AlgorithmSeries) Len() int { return len(s.Points) }

// Set is the output of one Build: the three series of one metric kind and
// regime, in algorithm order.
type Set struct {
	Kind     measure.MetricKind                     `json:"kind"`
	Regime   measure.Regime                         `json:"regime"`
	Constant string                                 `json:"constant"`
	Files    int                                    `json:"files"` // files that contributed a point
	Series   [measure.NumAlgorithms]AlgorithmSeries `json:"series"`

	// Skipped holds the decoding errors of files dropped in lenient mode.
	Skipped error `json:"-"`
}

// Builder reads and decodes result files from one directory.
type Builder struct {
	fs         afero.Fs
	dir        string
	classifier results.Classifier
	lenient    bool
	log        logrus.FieldLogger
}

// NewBuilder returns a Builder. With lenient set, files whose body does not
// decode are skipped with a warning instead of failing the build.
func NewBuilder(fs afero.Fs, dir string, c results.Classifier, lenient bool, log logrus.FieldLogger) *Builder {
	return &Builder{fs: fs, dir: dir, classifier: c, lenient: lenient, log: log}
}

// Build decodes files, all of the given kind and regime, and returns their
// series sorted by n. Points sharing n keep the order of files.
func (b *Builder) Build(kind measure.MetricKind, regime measure.Regime, files []string) (Set, error) {
	set := Set{Kind: kind, Regime: regime}
	for _, a := range measure.Algorithms {
		set.Series[a].Algorithm = a
	}
	if len(files) == 0 {
		return set, fmt.Errorf("%w: %s/%s", ErrNoInputFiles, kind, regime)
	}

	metas := make([]results.Metadata, len(files))
	for i, name := range files {
		md, err := results.ParseFilename(name, b.classifier)
		if err != nil {
			return set, err
		}
		if md.Kind != kind {
			return set, fmt.Errorf("%w: %q is not a %s file", results.ErrMalformedFilename, name, kind)
		}
		metas[i] = md
	}

	set.Constant = metas[0].Constant
	for _, md := range metas[1:] {
		if md.Constant != set.Constant {
			b.log.WithFields(logrus.Fields{
				"file":     md.Name,
				"constant": md.Constant,
				"using":    set.Constant,
			}).Warn("constant differs within regime")
		}
	}

	dec := measure.DecoderFor(kind)
	var skipped *multierror.Error
	for _, md := range metas {
		body, err := afero.ReadFile(b.fs, filepath.Join(b.dir, md.Name))
		if err != nil {
			return set, fmt.Errorf("reading %s: %w", md.Name, err)
		}
		rec, err := dec.Decode(body)
		if err != nil {
			err = fmt.Errorf("%s: %w", md.Name, err)
			if !b.lenient {
				return set, err
			}
			b.log.WithError(err).Warn("skipping file")
			skipped = multierror.Append(skipped, err)
			continue
		}
		b.log.WithFields(logrus.Fields{"file": md.Name, "n": md.N, "record": rec}).Debug("decoded")
		for _, a := range measure.Algorithms {
			set.Series[a].Points = append(set.Series[a].Points, Point{N: md.N, Value: rec.Value(a)})
		}
		set.Files++
	}
	set.Skipped = skipped.ErrorOrNil()

	if set.Files == 0 {
		return set, fmt.Errorf("%w: every %s/%s file was skipped: %v", ErrNoInputFiles, kind, regime, set.Skipped)
	}

	for a := range set.Series {
		pts := set.Series[a].Points
		sort.SliceStable(pts, func(i, j int) bool { return pts[i].N < pts[j].N })
	}
	return set, nil
}
