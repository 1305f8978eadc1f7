// Package route turns the output of a single-source search into a concrete
// itinerary and exposes the findRoute query used by the CLI and HTTP layers.
//
// What
//
//   - Table: the read-only view Reconstruct needs (Source, Distance,
//     Predecessor). Both *dijkstra.DistanceTable and *bfs.Result satisfy it.
//   - Reconstruct: walks predecessor links from the destination back to the
//     source and reverses them into a Path.
//   - FindRoute: normalizes codes, runs dijkstra.ShortestPaths, reconstructs.
//   - FindFewestStops: the same over bfs.Search (fewest legs, not miles).
//
// Outcomes
//
//	ErrNoRoute       the destination is not reachable; an expected result.
//	ErrUnknownVertex origin or destination is not in the graph.
//	ErrCorruptPath   predecessor links do not lead back to the source
//	                 (cycle, missing link, or a table built for another
//	                 source); an internal invariant violation.
//
// The total distance of a Path is taken from the table as-is and never
// re-summed from leg weights.
package route
