package route

import (
	"fmt"

	"github.com/katalvlaran/flightpath/bfs"
	"github.com/katalvlaran/flightpath/core"
	"github.com/katalvlaran/flightpath/dijkstra"
)

// FindRoute returns the shortest-distance itinerary from origin to dest.
// Codes are case-normalized. Unknown codes yield ErrUnknownVertex, unconnected
// airports ErrNoRoute. Options are passed through to dijkstra.ShortestPaths.
func FindRoute(g *core.Graph, origin, dest string, opts ...dijkstra.Option) (*Path, error) {
	src, dst, err := resolve(g, origin, dest)
	if err != nil {
		return nil, err
	}
	table, err := dijkstra.ShortestPaths(g, src, opts...)
	if err != nil {
		return nil, err
	}

	return Reconstruct(table, src, dst)
}

// FindFewestStops returns an itinerary from origin to dest with the fewest
// legs. TotalDistance is the leg count; use Miles to price it.
func FindFewestStops(g *core.Graph, origin, dest string, opts ...bfs.Option) (*Path, error) {
	src, dst, err := resolve(g, origin, dest)
	if err != nil {
		return nil, err
	}
	res, err := bfs.Search(g, src, opts...)
	if err != nil {
		return nil, err
	}

	return Reconstruct(res, src, dst)
}

// Miles sums the cheapest route weight of every leg of p in g.
func Miles(g *core.Graph, p *Path) (float64, error) {
	var total float64
	for _, leg := range p.Legs() {
		best, found := 0.0, false
		routes, err := g.RoutesFrom(leg.From)
		if err != nil {
			return 0, err
		}
		for _, r := range routes {
			if r.To == leg.To && (!found || r.Weight < best) {
				best, found = r.Weight, true
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: no route %s", ErrCorruptPath, leg)
		}
		total += best
	}

	return total, nil
}

func resolve(g *core.Graph, origin, dest string) (string, string, error) {
	if g == nil {
		return "", "", dijkstra.ErrNilGraph
	}
	src, dst := core.NormalizeCode(origin), core.NormalizeCode(dest)
	for _, code := range []string{src, dst} {
		if !g.HasVertex(code) {
			return "", "", fmt.Errorf("%w: %q", ErrUnknownVertex, code)
		}
	}

	return src, dst, nil
}
