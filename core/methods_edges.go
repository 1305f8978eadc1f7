// File: methods_edges.go
// Role: Route lifecycle & queries: AddEdge/HasEdge/Neighbors/Routes/EdgeCount.
//
// Determinism:
//   - Neighbors() yields routes in insertion order.
//   - Routes() returns routes sorted by (From, To), insertion order within a pair.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
//   - Neighbors() snapshots the adjacency slice before yielding, so the
//     returned sequence never holds the lock while the caller runs.

package core

import (
	"fmt"
	"iter"
	"math"
	"sort"
)

// ValidateWeight returns ErrInvalidWeight for a negative, NaN or infinite weight.
func ValidateWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return fmt.Errorf("%w: weight=%v", ErrInvalidWeight, weight)
	}

	return nil
}

// AddEdge adds a directed route from→to with the given weight in miles.
// The reverse route is never inferred; callers that want both directions
// add both explicitly.
//
// Steps:
//  1. Validate weight (negative, NaN, ±Inf ⇒ ErrInvalidWeight).
//  2. Normalize codes; lock mu; frozen graph ⇒ ErrFrozen.
//  3. Both endpoints must exist ⇒ ErrUnknownVertex.
//  4. Loop and parallel-route constraints (first route wins).
//  5. Append to the origin's adjacency slice.
//
// Complexity: O(deg(from)) for the parallel-route check, O(1) otherwise.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	// 1) Weight constraint
	if err := ValidateWeight(weight); err != nil {
		return fmt.Errorf("%w (%s→%s)", err, from, to)
	}

	// 2) Normalize and lock
	f, t := NormalizeCode(from), NormalizeCode(to)
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}

	// 3) Endpoint existence
	if _, ok := g.airports[f]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, from)
	}
	if _, ok := g.airports[t]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, to)
	}

	// 4) Loop and multi-edge constraints
	if f == t && !g.allowLoops {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, f)
	}
	if !g.allowMulti {
		for _, r := range g.adjacency[f] {
			if r.To == t {
				return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, f, t)
			}
		}
	}

	// 5) Store
	g.adjacency[f] = append(g.adjacency[f], &Route{From: f, To: t, Weight: weight})
	g.edgeCount++

	return nil
}

// HasEdge reports whether at least one route from→to exists.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	f, t := NormalizeCode(from), NormalizeCode(to)
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, r := range g.adjacency[f] {
		if r.To == t {
			return true
		}
	}

	return false
}

// Neighbors returns the lazy sequence of (destination, weight) pairs for the
// outgoing routes of code, in insertion order.
// Returns ErrUnknownVertex if code is absent.
// Complexity: O(deg(code)) to snapshot; iteration is lazy.
func (g *Graph) Neighbors(code string) (iter.Seq2[string, float64], error) {
	norm := NormalizeCode(code)
	g.mu.RLock()
	if _, ok := g.airports[norm]; !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, code)
	}
	routes := g.adjacency[norm]
	g.mu.RUnlock()

	// Appends only ever grow past len(routes), so this slice header is a
	// stable snapshot even if a writer runs later.
	return func(yield func(string, float64) bool) {
		for _, r := range routes {
			if !yield(r.To, r.Weight) {
				return
			}
		}
	}, nil
}

// Routes returns a copy of every route sorted by (From, To); parallel routes
// keep their insertion order.
// Complexity: O(E log E).
func (g *Graph) Routes() []Route {
	g.mu.RLock()
	out := make([]Route, 0, g.edgeCount)
	for _, rs := range g.adjacency {
		for _, r := range rs {
			out = append(out, *r)
		}
	}
	g.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// RoutesFrom returns a copy of the outgoing routes of code in insertion order.
// Returns ErrUnknownVertex if code is absent.
func (g *Graph) RoutesFrom(code string) ([]Route, error) {
	norm := NormalizeCode(code)
	g.mu.RLock()
	defer g.mu.RUnlock()
	rs, ok := g.adjacency[norm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, code)
	}
	out := make([]Route, len(rs))
	for i, r := range rs {
		out[i] = *r
	}

	return out, nil
}

// EdgeCount returns the number of routes.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
