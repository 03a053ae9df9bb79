package dijkstra

import (
	"errors"
	"math"
)

// ErrBadMaxDistance indicates that MaxDistance was set to a negative value
// or NaN, which is not meaningful for a distance threshold.
var ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

// Strategy selects how the next closest node is chosen.
type Strategy int

const (
	// StrategyScan scans every unfinalized node per step: O(V²) total.
	// Best for the small, dense networks this package is usually run on.
	StrategyScan Strategy = iota

	// StrategyHeap keeps a lazy binary min-heap: O((V + E) log V).
	StrategyHeap
)

// String returns the strategy name used in metrics labels.
func (s Strategy) String() string {
	switch s {
	case StrategyScan:
		return "scan"
	case StrategyHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// Options configures the behavior of ShortestPath and Distances.
//
// Strategy    – node selection strategy (StrategyScan by default).
// MaxDistance – nodes whose distance would exceed this value are not
//
//	explored. Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Strategy    Strategy
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithHeap selects StrategyHeap. Results are identical to the default scan.
func WithHeap() Option {
	return func(o *Options) {
		o.Strategy = StrategyHeap
	}
}

// WithStrategy selects the given strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance for negative or NaN values.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the scan strategy with no distance cap.
func DefaultOptions() Options {
	return Options{
		Strategy:    StrategyScan,
		MaxDistance: math.Inf(1),
	}
}

// Result is the outcome of a single-pair query.
//
// Path is nil and Distance is +Inf when no active route exists.
type Result struct {
	Path     []string
	Distance float64
}

// Reachable reports whether a route was found.
func (r Result) Reachable() bool { return r.Path != nil }

// Hops returns the number of edges on the route, or -1 if unreachable.
func (r Result) Hops() int { return len(r.Path) - 1 }

// unreachable is the sentinel result for every failed query.
func unreachable() Result {
	return Result{Path: nil, Distance: math.Inf(1)}
}
