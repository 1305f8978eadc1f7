package dijkstra

import (
	"math"

	"github.com/katalvlaran/flightpath/core"
)

// DistanceTable is the per-query result of ShortestPaths: for every airport
// the best distance from the source and the predecessor on that route.
//
// A table is produced by exactly one run and is read-only afterwards. Lookups
// normalize codes the same way core.Graph does.
type DistanceTable struct {
	source string
	dist   map[string]float64 // code → distance, +Inf when unreachable
	prev   map[string]string  // code → predecessor; absent for source and unreachable
	order  []string           // airports in finalization order
}

func newDistanceTable(source string, n int) *DistanceTable {
	return &DistanceTable{
		source: source,
		dist:   make(map[string]float64, n),
		prev:   make(map[string]string, n),
		order:  make([]string, 0, n),
	}
}

// Source returns the normalized source airport code.
func (t *DistanceTable) Source() string { return t.source }

// Distance returns the shortest distance to code. ok is false, and the
// distance +Inf, when code is unreachable or not part of the graph.
func (t *DistanceTable) Distance(code string) (float64, bool) {
	d, found := t.dist[core.NormalizeCode(code)]
	if !found || math.IsInf(d, 1) {
		return math.Inf(1), false
	}

	return d, true
}

// Predecessor returns the airport preceding code on its shortest route.
// ok is false for the source and for unreachable or unknown airports.
func (t *DistanceTable) Predecessor(code string) (string, bool) {
	p, ok := t.prev[core.NormalizeCode(code)]

	return p, ok
}

// Reachable reports whether code has a finite distance.
func (t *DistanceTable) Reachable(code string) bool {
	_, ok := t.Distance(code)

	return ok
}

// Len returns the number of airports covered by the table.
func (t *DistanceTable) Len() int { return len(t.dist) }

// Finalized returns the reachable airports in the order the engine finalized
// them; distances along it are non-decreasing.
func (t *DistanceTable) Finalized() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)

	return out
}
