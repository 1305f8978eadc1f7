// Package core provides the thread-safe in-memory route network used by the
// shortest-path engine.
//
// The Graph G = (V,E) holds airports as vertices and one-way routes as
// weighted edges:
//
//   - Airports are identified by their code; codes are normalized
//     (trimmed, upper-cased) on every insert and lookup, so "sfo" and " SFO "
//     name the same airport.
//   - Routes are directed. An undirected dataset is modelled by adding the
//     reverse route explicitly; the store never infers symmetry.
//   - Weights are distances in miles and must be finite and non-negative.
//   - Adjacency is a per-airport slice in insertion order, so Neighbors is
//     deterministic and every algorithm on top of it is reproducible.
//   - A single sync.RWMutex guards the graph; a loaded graph is normally
//     frozen (Freeze) and then shared read-only by any number of queries.
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows several routes between the same ordered pair.
//	    Otherwise a second AddEdge(from,to) → ErrDuplicateEdge (first wins).
//
//	– WithLoops()
//	    Permits self-routes; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Airport lifecycle
//	AddVertex(code string, opts ...VertexOption) error   // O(1)
//	HasVertex(code string) bool                          // O(1)
//	Vertex(code string) (Airport, error)                 // O(1)
//
//	// Route lifecycle
//	AddEdge(from, to string, weight float64) error       // O(deg(from))
//	HasEdge(from, to string) bool                        // O(deg(from))
//
//	// Query
//	Neighbors(code string) (iter.Seq2[string, float64], error) // lazy
//	RoutesFrom(code string) ([]Route, error)
//	Routes() []Route
//	Vertices() []string
//	VertexCount(), EdgeCount() int
//	Stats() GraphStats
//
//	// Lifecycle
//	Freeze()                                             // reject further mutation
//
// Errors:
//
//	ErrEmptyCode       – blank airport code
//	ErrDuplicateVertex – airport already present
//	ErrUnknownVertex   – missing airport
//	ErrInvalidWeight   – negative or non-finite weight
//	ErrLoopNotAllowed  – self-route when loops disabled
//	ErrDuplicateEdge   – parallel route when multi-edges disabled
//	ErrFrozen          – mutation after Freeze
package core
