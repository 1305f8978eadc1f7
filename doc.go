// Package flightpath finds the shortest flight route between two airports.
//
// A route network is loaded once from a CSV dataset into an immutable
// graph, and every query runs Dijkstra's algorithm from the origin and
// walks the predecessor links back from the destination.
//
// Packages
//
//	core/     Graph of airports and directed, weighted routes (miles)
//	dijkstra/ single-source shortest distances and predecessors
//	bfs/      fewest-legs search and reachability
//	route/    path reconstruction and the FindRoute query
//	loader/   CSV dataset → frozen core.Graph, malformed rows skipped
//	config/   flightpath.toml
//	metrics/  Prometheus collectors
//	server/   HTTP API (gorilla/mux)
//	cli/      interactive prompt
//	cmd/flightpath/ the binary
//
// Quick start
//
//	g, _, err := loader.LoadFile("data/routes.csv")
//	if err != nil { … }
//	p, err := route.FindRoute(g, "PDX", "DFW")
//	switch {
//	case route.IsNoRoute(err):      // airports not connected
//	case route.IsUnknownAirport(err):
//	case err == nil:
//		for _, leg := range p.Legs() { fmt.Println(leg) }
//		fmt.Printf("Total Miles: %.2f miles.\n", p.TotalDistance)
//	}
//
// Routes are one-way unless the dataset is loaded with
// loader.WithBidirectional(true). Among equally short routes the first
// one discovered wins.
package flightpath
