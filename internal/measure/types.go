// internal/measure/types.go
// Package measure holds the closed vocabularies shared by the pipeline
// (algorithms, metric kinds, density regimes) and the decoders that turn a
// raw result file body into one value per algorithm.
package measure

import (
	"fmt"
	"strings"
)

// Algorithm identifies one of the three measured max-flow implementations.
// The order of the constants matches the order of the blocks in a result
// file and must not change.
type Algorithm int

const (
	DFS Algorithm = iota // Ford-Fulkerson
	BFS                  // Edmonds-Karp
	RTF                  // Relabel-to-Front

	NumAlgorithms = 3
)

// Algorithms lists every algorithm in file order.
var Algorithms = [NumAlgorithms]Algorithm{DFS, BFS, RTF}

var algorithmNames = [NumAlgorithms]struct {
	marker, title, full string
}{
	{"dfs", "Dfs", "Ford-Fulkerson"},
	{"bfs", "Bfs", "Edmonds-Karp"},
	{"rtf", "Rtf", "Relabel-to-Front"},
}

func (a Algorithm) valid() bool { return a >= DFS && a <= RTF }

// String returns the marker token used inside result files ("dfs", ...).
func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a].marker
}

// Title returns the capitalised short name used in artifact names.
func (a Algorithm) Title() string {
	if !a.valid() {
		return a.String()
	}
	return algorithmNames[a].title
}

// FullName returns the textbook name of the algorithm.
func (a Algorithm) FullName() string {
	if !a.valid() {
		return a.String()
	}
	return algorithmNames[a].full
}

// IsMarker reports whether line is one of the section delimiter tokens.
func IsMarker(line string) bool {
	for _, n := range algorithmNames {
		if line == n.marker {
			return true
		}
	}
	return false
}

// MetricKind distinguishes time measurements from memory measurements.
type MetricKind int

const (
	Time MetricKind = iota
	Memory
)

// MetricKinds lists the kinds in the order the pipeline processes them.
var MetricKinds = []MetricKind{Time, Memory}

func (k MetricKind) String() string {
	switch k {
	case Time:
		return "time"
	case Memory:
		return "memory"
	}
	return fmt.Sprintf("MetricKind(%d)", int(k))
}

// Suffix is the filename suffix the test runner gives files of this kind.
func (k MetricKind) Suffix() string {
	if k == Memory {
		return "_mem"
	}
	return "_res"
}

// ArtifactPrefix is the leading part of an output artifact name.
func (k MetricKind) ArtifactPrefix() string {
	if k == Memory {
		return "mem"
	}
	return "time"
}

// ParseMetricKind accepts "time" or "memory" (also "mem").
func ParseMetricKind(s string) (MetricKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "time":
		return Time, nil
	case "memory", "mem":
		return Memory, nil
	}
	return 0, fmt.Errorf("unknown metric kind %q", s)
}

// Regime is the density class of the generated graphs.
type Regime int

const (
	Sparse Regime = iota // m = O(n)
	Dense                // m = O(n^2)
)

// Regimes lists the regimes in the order the pipeline processes them.
var Regimes = []Regime{Sparse, Dense}

func (r Regime) String() string {
	switch r {
	case Sparse:
		return "sparse"
	case Dense:
		return "dense"
	}
	return fmt.Sprintf("Regime(%d)", int(r))
}

// Notation is the edge-count growth written in asymptotic notation.
func (r Regime) Notation() string {
	if r == Dense {
		return "O(n^2)"
	}
	return "O(n)"
}

// ArtifactSuffix is the trailing part of an output artifact name.
func (r Regime) ArtifactSuffix() string {
	if r == Dense {
		return "On2"
	}
	return "On"
}

// Other returns the opposite regime.
func (r Regime) Other() Regime {
	if r == Dense {
		return Sparse
	}
	return Dense
}

// ParseRegime accepts "sparse" or "dense".
func ParseRegime(s string) (Regime, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sparse":
		return Sparse, nil
	case "dense":
		return Dense, nil
	}
	return 0, fmt.Errorf("unknown regime %q", s)
}
