// internal/stats/types.go
// Package: stats
package stats

import "github.com/mwiater/flowstats/internal/measure"

// Coord is one plotted point.
type Coord struct {
	N     int     `json:"n"`
	Value float64 `json:"value"`
}

// Group summarizes every trial sharing one input size.
type Group struct {
	N    int     `json:"n"`    // representative size: n of the first trial
	Size int     `json:"size"` // trials in the group
	Min  int64   `json:"min"`
	Max  int64   `json:"max"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"` // population standard deviation
}

// Summary is the grouped form of one algorithm series.
type Summary struct {
	Algorithm measure.Algorithm `json:"algorithm"`
	Groups    []Group           `json:"groups"`
}

// Min returns the (n, min) coordinates.
func (s Summary) Min() []Coord {
	return s.coords(func(g Group) float64 { return float64(g.Min) })
}

// Mean returns the (n, mean) coordinates.
func (s Summary) Mean() []Coord {
	return s.coords(func(g Group) float64 { return g.Mean })
}

// Max returns the (n, max) coordinates.
func (s Summary) Max() []Coord {
	return s.coords(func(g Group) float64 { return float64(g.Max) })
}

func (s Summary) coords(pick func(Group) float64) []Coord {
	out := make([]Coord, len(s.Groups))
	for i, g := range s.Groups {
		out[i] = Coord{N: g.N, Value: pick(g)}
	}
	return out
}
