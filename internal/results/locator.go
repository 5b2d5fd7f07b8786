// internal/results/locator.go
package results

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/mwiater/flowstats/internal/measure"
)

// Partition is the set of files of one metric kind split by regime. The
// lists keep directory listing order.
type Partition struct {
	Kind   measure.MetricKind `json:"kind"`
	Sparse []string           `json:"sparse"`
	Dense  []string           `json:"dense"`
}

// Files returns the list for regime r.
func (p Partition) Files(r measure.Regime) []string {
	if r == measure.Dense {
		return p.Dense
	}
	return p.Sparse
}

// Len is the number of files across both regimes.
func (p Partition) Len() int { return len(p.Sparse) + len(p.Dense) }

// Locator lists result files in one directory.
type Locator struct {
	fs         afero.Fs
	dir        string
	classifier Classifier
}

// NewLocator returns a Locator reading dir on fs.
func NewLocator(fs afero.Fs, dir string, c Classifier) *Locator {
	return &Locator{fs: fs, dir: dir, classifier: c}
}

// Dir is the directory the locator reads.
func (l *Locator) Dir() string { return l.dir }

// Locate returns every regular file whose name ends with the suffix of
// kind, split by regime. Finding nothing is not an error.
func (l *Locator) Locate(kind measure.MetricKind) (Partition, error) {
	p := Partition{Kind: kind}
	entries, err := afero.ReadDir(l.fs, l.dir)
	if err != nil {
		return p, fmt.Errorf("reading results directory %s: %w", l.dir, err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, kind.Suffix()) {
			continue
		}
		if l.classifier.Regime(name) == measure.Dense {
			p.Dense = append(p.Dense, name)
		} else {
			p.Sparse = append(p.Sparse, name)
		}
	}
	return p, nil
}
