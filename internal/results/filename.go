// internal/results/filename.go
// Package results discovers measurement files written by the test runner
// and decodes the metadata encoded in their names.
package results

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mwiater/flowstats/internal/measure"
)

// ErrMalformedFilename is wrapped by every filename decoding failure.
var ErrMalformedFilename = errors.New("malformed result filename")

var (
	sizePattern     = regexp.MustCompile(`\d+`)
	constantPattern = regexp.MustCompile(`c(\d+(?:\.\d+)?)`)
)

// Classifier decides the density regime of a file from a substring marker.
// Files containing Marker belong to Marked, every other file to the
// opposite regime.
type Classifier struct {
	Marker string         `json:"marker"`
	Marked measure.Regime `json:"marked"`
}

// DefaultClassifier matches the runner's naming: "max" tags the graphs
// with m = O(n).
var DefaultClassifier = Classifier{Marker: "max", Marked: measure.Sparse}

// Regime returns the regime of the file called name.
func (c Classifier) Regime(name string) measure.Regime {
	if c.Marker != "" && strings.Contains(name, c.Marker) {
		return c.Marked
	}
	return c.Marked.Other()
}

// Metadata is everything the runner encodes in a result filename.
type Metadata struct {
	Name     string             `json:"name"`
	N        int                `json:"n"`        // number of vertices
	Constant string             `json:"constant"` // hidden constant, as written
	Kind     measure.MetricKind `json:"kind"`
	Regime   measure.Regime     `json:"regime"`
}

// ParseFilename decodes name, e.g. "Vn200_c1.5_max_mem". The size is the
// first digit run of the name and the constant follows the first "c" that
// is immediately followed by a number.
func ParseFilename(name string, c Classifier) (Metadata, error) {
	md := Metadata{Name: name}

	switch {
	case strings.HasSuffix(name, measure.Time.Suffix()):
		md.Kind = measure.Time
	case strings.HasSuffix(name, measure.Memory.Suffix()):
		md.Kind = measure.Memory
	default:
		return md, fmt.Errorf("%w: %q has no %s or %s suffix", ErrMalformedFilename, name, measure.Time.Suffix(), measure.Memory.Suffix())
	}

	digits := sizePattern.FindString(name)
	if digits == "" {
		return md, fmt.Errorf("%w: %q carries no size", ErrMalformedFilename, name)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return md, fmt.Errorf("%w: size %q in %q: %v", ErrMalformedFilename, digits, name, err)
	}
	md.N = n

	m := constantPattern.FindStringSubmatch(name)
	if m == nil {
		return md, fmt.Errorf("%w: %q carries no constant marker", ErrMalformedFilename, name)
	}
	md.Constant = m[1]
	md.Regime = c.Regime(name)
	return md, nil
}
