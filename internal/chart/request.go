// internal/chart/request.go
// Package chart is the boundary to the rendering layer: it names
// artifacts, describes each one as a PlotRequest and persists it.
package chart

import (
	"fmt"

	"github.com/mwiater/flowstats/internal/measure"
	"github.com/mwiater/flowstats/internal/stats"
)

const xLabel = "n, number of vertices"

// PlotRequest carries everything needed to draw one artifact.
type PlotRequest struct {
	Name      string             `json:"name"` // artifact name without extension
	Kind      measure.MetricKind `json:"kind"`
	Regime    measure.Regime     `json:"regime"`
	Algorithm measure.Algorithm  `json:"algorithm"`
	Caption   string             `json:"caption"`
	YLabel    string             `json:"y_label"`
	Constant  string             `json:"constant"`
	Summary   stats.Summary      `json:"summary"`
}

// Emitter persists plot requests.
type Emitter interface {
	Emit(req PlotRequest) error
}

// ArtifactName returns the deterministic name of the artifact for the
// combination, e.g. "timeDfsOn2".
func ArtifactName(k measure.MetricKind, a measure.Algorithm, r measure.Regime) string {
	return k.ArtifactPrefix() + a.Title() + r.ArtifactSuffix()
}

// Headline is the first caption line for a metric kind.
func Headline(k measure.MetricKind) string {
	if k == measure.Memory {
		return "Memory consumption"
	}
	return "Time consumption"
}

// YLabel is the y axis label for a metric kind.
func YLabel(k measure.MetricKind) string {
	if k == measure.Memory {
		return "bytes"
	}
	return "time"
}

// NewRequest builds the request for one summarized algorithm.
func NewRequest(k measure.MetricKind, r measure.Regime, constant string, s stats.Summary) PlotRequest {
	return PlotRequest{
		Name:      ArtifactName(k, s.Algorithm, r),
		Kind:      k,
		Regime:    r,
		Algorithm: s.Algorithm,
		Caption:   fmt.Sprintf("%s\nm = %s : %s", Headline(k), r.Notation(), s.Algorithm.FullName()),
		YLabel:    YLabel(k),
		Constant:  constant,
		Summary:   s,
	}
}
