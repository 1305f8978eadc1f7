// Package dijkstra implements Dijkstra's shortest-path algorithm on the route network.
//
// Dijkstra computes the minimum-distance route from a single source airport to all
// other reachable airports in a graph with non-negative route weights.
// It processes airports in order of increasing distance using a min-heap priority queue,
// relaxing routes and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each airport is finalized at most once.
//   - Each route relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the distance table.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We check every weight during relaxation and fail with ErrNegativeWeight.
//   - We treat any route with weight ≥ InfEdgeThreshold as impassable.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap entries with equal distance pop in push order, and only a strictly shorter
//     candidate replaces a predecessor, so ties keep the first-found predecessor.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/flightpath/core"
)

// ShortestPaths computes shortest distances and predecessors from source to
// every airport in g.
//
// Returns a fresh DistanceTable owned by the caller; nothing is shared across
// calls, so the same frozen graph may serve any number of queries.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-blank (ErrEmptySource).
//  3. g must contain source (ErrUnknownVertex).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPaths(g *core.Graph, source string, opts ...Option) (*DistanceTable, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	src := core.NormalizeCode(source)
	if src == "" {
		return nil, ErrEmptySource
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, source)
	}

	// 3) Prepare the runner with per-query state.
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		table:   newDistanceTable(src, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}

	// 4) Initialize algorithm state and run main loop.
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.table, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph     // The input graph; read-only within Dijkstra.
	options Options         // Configuration options (thresholds).
	table   *DistanceTable  // Distances, predecessors and finalization order.
	visited map[string]bool // Tracks if an airport's distance is finalized.
	pq      nodePQ          // Min-heap of *nodeItem for lazy priority queue.
	seq     uint64          // Push counter for FIFO tie-breaking.
}

// init sets dist[v] = +Inf for every airport, dist[source] = 0, and seeds the heap.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.table.dist[v] = math.Inf(1)
	}
	r.table.dist[r.table.source] = 0

	heap.Init(&r.pq)
	r.push(r.table.source, 0)
}

// push adds (id, dist) to the heap stamped with the next sequence number.
func (r *runner) push(id string, dist float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the
// unvisited airport with the minimum tentative distance and relaxes its routes.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable airports finalized).
//   - The extracted distance is +Inf (the rest is unreachable).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// 2) Stale entry for an airport already finalized with a smaller distance.
		if r.visited[u] {
			continue
		}

		// 3) Beyond the distance cap: stop without finalizing u.
		if d > r.options.MaxDistance {
			break
		}

		// 4) Finalize u.
		r.visited[u] = true
		if math.IsInf(d, 1) {
			break
		}
		r.table.order = append(r.table.order, u)

		// 5) Relax all outgoing routes from u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each route leaving u and attempts to improve the distance to
// its destination. Assumes dist[u] is final.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.table.dist[u]
	for v, w := range neighbors {
		// Finalized airports never improve.
		if r.visited[v] {
			continue
		}

		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: route %s→%s weight=%v", ErrNegativeWeight, u, v, w)
		}

		// Impassable route.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := du + w
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict improvement only: equal candidates keep the earlier predecessor.
		if newDist >= r.table.dist[v] {
			continue
		}

		r.table.dist[v] = newDist
		r.table.prev[v] = u
		r.push(v, newDist)
	}

	return nil
}

// nodeItem represents an airport and its tentative distance from the source.
type nodeItem struct {
	id   string  // airport code
	dist float64 // distance from source
	seq  uint64  // push order, breaks distance ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq) ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist first, then earlier push.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already swapped the minimum there.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
