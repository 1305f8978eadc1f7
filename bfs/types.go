// Package bfs provides tunable options and error definitions
// for breadth-first search over the route network.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/flightpath/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start airport is absent.
	// It wraps core.ErrUnknownVertex.
	ErrStartVertexNotFound = fmt.Errorf("bfs: start airport not found: %w", core.ErrUnknownVertex)

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting an airport. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(code string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many legs.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterRoute can skip routes by returning false.
	// Called for each route curr→neighbor with its weight in miles.
	FilterRoute func(curr, neighbor string, miles float64) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all routes allowed)
//   - no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnVisit:     func(string, int) error { return nil },
		MaxDepth:    0,
		FilterRoute: func(string, string, float64) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(code string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search after the given number of legs.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterRoute skips routes when fn returns false.
func WithFilterRoute(fn func(curr, neighbor string, miles float64) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterRoute = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: airports visited, in visit sequence.
//   - Depth: airport code → number of legs from the start.
//   - Parent: airport code → predecessor in the BFS tree.
//
// Result satisfies route.Table with the leg count as distance, so fewest-stop
// paths are rebuilt by the same reconstructor as shortest-distance ones.
type Result struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Source returns the normalized start airport.
func (r *Result) Source() string { return r.Start }

// Distance returns the number of legs to code; ok is false (and the value
// +Inf) when code was not reached.
func (r *Result) Distance(code string) (float64, bool) {
	d, ok := r.Depth[core.NormalizeCode(code)]
	if !ok {
		return math.Inf(1), false
	}

	return float64(d), true
}

// Predecessor returns the parent of code in the BFS tree.
func (r *Result) Predecessor(code string) (string, bool) {
	p, ok := r.Parent[core.NormalizeCode(code)]

	return p, ok
}
