// internal/stats/metrics.go
// Package: stats
package stats

import (
	"errors"
	"fmt"
	"slices"

	mstats "github.com/montanaflynn/stats"

	"github.com/mwiater/flowstats/internal/measure"
	"github.com/mwiater/flowstats/internal/series"
)

// ErrGrouping is wrapped by every *GroupingError.
var ErrGrouping = errors.New("series does not split into trial groups")

// GroupingError reports a series that cannot be cut into groups of the
// expected trial count, which means a result file is missing or extra.
type GroupingError struct {
	Algorithm measure.Algorithm
	Kind      measure.MetricKind
	Regime    measure.Regime
	Length    int
	Trials    int
	Reason    string
}

func (e *GroupingError) Error() string {
	return fmt.Sprintf("%s: %s/%s/%s: %d points, %d trials per size: %s",
		ErrGrouping, e.Kind, e.Regime, e.Algorithm, e.Length, e.Trials, e.Reason)
}

func (e *GroupingError) Unwrap() error { return ErrGrouping }

// Aggregator cuts size-sorted series into consecutive groups of Trials
// points and reduces each group.
type Aggregator struct {
	// Trials is the number of result files per input size.
	Trials int
	// SortGroups orders each group by value before min and max are read
	// off its ends. Without it the group is taken in file order.
	SortGroups bool
}

// Groups reduces one series. Its Kind and Regime are left unset on a
// returned *GroupingError.
func (a Aggregator) Groups(s series.AlgorithmSeries) ([]Group, error) {
	if a.Trials <= 0 {
		return nil, fmt.Errorf("trial count must be positive, got %d", a.Trials)
	}
	fail := func(reason string) error {
		return &GroupingError{Algorithm: s.Algorithm, Length: s.Len(), Trials: a.Trials, Reason: reason}
	}
	if s.Len()%a.Trials != 0 {
		return nil, fail(fmt.Sprintf("%d points left over", s.Len()%a.Trials))
	}

	groups := make([]Group, 0, s.Len()/a.Trials)
	for i := 0; i < s.Len(); i += a.Trials {
		block := s.Points[i : i+a.Trials]
		if block[0].N != block[len(block)-1].N {
			return nil, fail(fmt.Sprintf("group at index %d spans n=%d..%d", i, block[0].N, block[len(block)-1].N))
		}
		g, err := a.reduce(block)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func (a Aggregator) reduce(block []series.Point) (Group, error) {
	values := make([]int64, len(block))
	data := make(mstats.Float64Data, len(block))
	for i, p := range block {
		values[i] = p.Value
		data[i] = float64(p.Value)
	}
	if a.SortGroups {
		slices.Sort(values)
	}

	mean, err := mstats.Mean(data)
	if err != nil {
		return Group{}, err
	}
	std, err := mstats.StandardDeviationPopulation(data)
	if err != nil {
		return Group{}, err
	}
	return Group{
		N:    block[0].N,
		Size: len(block),
		Min:  values[0],
		Max:  values[len(values)-1],
		Mean: mean,
		Std:  std,
	}, nil
}

// Summarize reduces every series of set, keeping algorithm order.
func (a Aggregator) Summarize(set series.Set) ([measure.NumAlgorithms]Summary, error) {
	var out [measure.NumAlgorithms]Summary
	for i, s := range set.Series {
		groups, err := a.Groups(s)
		if err != nil {
			var ge *GroupingError
			if errors.As(err, &ge) {
				ge.Kind, ge.Regime = set.Kind, set.Regime
			}
			return out, err
		}
		out[i] = Summary{Algorithm: s.Algorithm, Groups: groups}
	}
	return out, nil
}
