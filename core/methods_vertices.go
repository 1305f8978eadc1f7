// File: methods_vertices.go
// Role: Airport lifecycle & queries.
//
// Determinism:
//   - Vertices() returns codes sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a new airport with the given code.
//
// Steps:
//  1. Normalize code; blank ⇒ ErrEmptyCode.
//  2. Lock mu; frozen graph ⇒ ErrFrozen.
//  3. Existing code ⇒ ErrDuplicateVertex (insertion is strict, not idempotent).
//  4. Apply options and register the airport with an empty adjacency slot.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(code string, opts ...VertexOption) error {
	// 1) Input validation
	code = NormalizeCode(code)
	if code == "" {
		return ErrEmptyCode
	}

	// 2) Register under write lock
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}

	// 3) Duplicate check
	if _, exists := g.airports[code]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateVertex, code)
	}

	// 4) Build the airport, options may fill any optional attribute
	a := &Airport{Code: code}
	for _, opt := range opts {
		opt(a)
	}
	a.Code = code // options never override identity

	g.airports[code] = a
	g.adjacency[code] = nil

	return nil
}

// HasVertex reports whether an airport with the given code exists.
// The lookup is case-normalized; a blank code is always absent.
// Complexity: O(1).
func (g *Graph) HasVertex(code string) bool {
	code = NormalizeCode(code)
	if code == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.airports[code]

	return ok
}

// Vertex returns a copy of the airport stored under code.
// Returns ErrUnknownVertex when absent.
// Complexity: O(1).
func (g *Graph) Vertex(code string) (Airport, error) {
	norm := NormalizeCode(code)
	g.mu.RLock()
	defer g.mu.RUnlock()
	a, ok := g.airports[norm]
	if !ok {
		return Airport{}, fmt.Errorf("%w: %q", ErrUnknownVertex, code)
	}

	return *a, nil
}

// Vertices returns all airport codes sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.airports))
	for code := range g.airports {
		out = append(out, code)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out
}

// VertexCount returns the number of airports.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.airports)
}
