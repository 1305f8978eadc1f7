// Package dijkstra provides the single-source shortest-path engine for the
// route network: Dijkstra's algorithm over a core.Graph whose route weights
// are non-negative distances in miles.
//
// Overview:
//
//   - ShortestPaths computes, from one source airport, the minimum distance and
//     predecessor for every airport in O((V + E) log V).
//   - It relies on a min-heap (priority queue) to always finalize the next-closest airport.
//   - Re-insertion replaces decrease-key: an airport may sit in the heap several
//     times, only its first extraction (carrying its minimal distance) is acted on,
//     later ones are stale and skipped.
//
// Algorithm:
//
//  1. dist[source] = 0, dist[v] = +Inf for every other v, no predecessors.
//  2. Seed the heap with (0, source).
//  3. Pop the minimum; skip it if already finalized; stop on an empty heap or
//     a +Inf distance.
//  4. Mark it finalized and relax each outgoing route u→v (weight w) with v not
//     finalized: if dist[u]+w < dist[v] then dist[v] = dist[u]+w, prev[v] = u,
//     push (dist[v], v).
//
// Determinism:
//
//   - Routes are relaxed in insertion order (core.Graph.Neighbors).
//   - Equal-distance heap entries pop in push order.
//   - Relaxation is strict (<), so among equally short routes the first-found
//     predecessor is kept. Running the same query twice yields identical tables.
//
// Result:
//
//	table, err := dijkstra.ShortestPaths(g, "PDX")
//	d, ok := table.Distance("DFW")      // ok == false ⇒ unreachable
//	p, ok := table.Predecessor("DFW")   // previous airport on the route
//
// Pass the table to route.Reconstruct to obtain the ordered path.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrEmptySource:    blank source code.
//   - ErrUnknownVertex:  source not in the graph (also matches core.ErrUnknownVertex).
//   - ErrNegativeWeight: a negative or NaN weight met during relaxation.
//
// Thread safety:
//
//   - Every call allocates its own DistanceTable; the graph is only read.
//     A frozen graph can therefore back any number of queries.
package dijkstra
