package agg

import "fmt"

// Stats summarizes a multiset of observations.
//
// Min and Max are meaningless for Count == 0.
type Stats struct {
	Count int
	Sum   float64
	Min   float64
	Max   float64
}

// Observe creates the summary of a single observation.
func Observe(x float64) Stats {
	return Stats{Count: 1, Sum: x, Min: x, Max: x}
}

// Mean returns the arithmetic mean of the observations, or 0 for an empty
// summary.
func (s Stats) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

func (s Stats) String() string {
	if s.Count == 0 {
		return "{n=0}"
	}
	return fmt.Sprintf("{n=%d sum=%g min=%g max=%g}", s.Count, s.Sum, s.Min, s.Max)
}

// StatsMonoid aggregates Stats values.
type StatsMonoid struct{}

// Zero returns the summary of no observations.
func (StatsMonoid) Zero() Stats { return Stats{} }

// Add combines two summaries.
func (StatsMonoid) Add(left, right Stats) Stats {
	switch {
	case left.Count == 0:
		return right
	case right.Count == 0:
		return left
	}
	return Stats{
		Count: left.Count + right.Count,
		Sum:   left.Sum + right.Sum,
		Min:   min(left.Min, right.Min),
		Max:   max(left.Max, right.Max),
	}
}
