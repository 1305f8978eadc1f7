// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on the route network.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; airports beyond it stay unreachable.
//	– InfEdgeThreshold: routes with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrEmptySource     if the provided source code is blank.
//	– ErrUnknownVertex   if the source airport does not exist in the graph.
//	– ErrNegativeWeight  if a negative (or NaN) route weight is met during relaxation.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 or NaN.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/flightpath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the provided source code is empty.
	ErrEmptySource = errors.New("dijkstra: source airport code is empty")

	// ErrUnknownVertex indicates that the source airport does not exist.
	// It wraps core.ErrUnknownVertex so callers may test for either.
	ErrUnknownVertex = fmt.Errorf("dijkstra: source airport not found: %w", core.ErrUnknownVertex)

	// ErrNegativeWeight indicates that a negative route weight was met.
	ErrNegativeWeight = errors.New("dijkstra: negative route weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all routes (including zero-weight ones) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – optional cap on distances to explore. Must be ≥ 0.
// Default is +Inf (no cap).
//
// InfEdgeThreshold – treat routes with weight ≥ this threshold as impassable.
// Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold above which routes are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold in miles.
// Airports whose shortest distance would exceed this value are not explored.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which routes are
// considered non-traversable. Zero, negative or NaN values panic with
// ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - MaxDistance:      +Inf (no distance limit; explore all reachable).
//   - InfEdgeThreshold: +Inf (no routes treated as impassable).
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
