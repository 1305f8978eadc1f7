// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing policy getters, Freeze and Stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsMulti bool // parallel routes permitted
	AllowsLoops bool // self-routes permitted
	Frozen      bool // mutations rejected

	VertexCount int // number of airports
	EdgeCount   int // number of routes

	// Isolated counts airports with neither outgoing nor incoming routes.
	Isolated int
}

// Freeze makes the graph immutable: every later AddVertex/AddEdge returns
// ErrFrozen. Freezing is one-way and idempotent.
//
// Complexity: O(1). Takes the write lock once.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
// Complexity: O(1).
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// Multigraph reports whether parallel routes between the same airports are permitted.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-routes are permitted.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Stats produces a deterministic snapshot of flags and counts.
//
// Implementation:
//   - Stage 1: Under the read lock, copy flags and sizes.
//   - Stage 2: Mark every airport touched by a route; the rest are isolated.
//
// Complexity:
//   - Time O(V+E), Space O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		Frozen:      g.frozen,
		VertexCount: len(g.airports),
		EdgeCount:   g.edgeCount,
	}

	touched := make(map[string]struct{}, len(g.airports))
	for from, rs := range g.adjacency {
		for _, r := range rs {
			touched[from] = struct{}{}
			touched[r.To] = struct{}{}
		}
	}
	stats.Isolated = len(g.airports) - len(touched)

	return stats
}
