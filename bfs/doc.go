// Package bfs provides breadth-first search over the route network,
// answering "fewest legs" questions that the distance-based engine does not.
//
// What
//
//   - Explore airports in non-decreasing number of legs from a start airport.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: airport → legs from start
//   - Parent: airport → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), route filtering via
//     WithFilterRoute, and a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Reachable lists every airport the start can fly to.
//
// Determinism
//
//	core.Graph.Neighbors yields routes in insertion order, and BFS enqueues
//	destinations in that order, so the visit sequence is fully reproducible.
//	Among several fewest-leg paths the first discovered one wins.
//
// Result implements route.Table (Source/Distance/Predecessor) with the leg
// count as distance, so route.Reconstruct turns it into a path.
//
// Complexity
//
//	Time O(V + E), Space O(V).
package bfs
