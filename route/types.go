package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flightpath/core"
	"github.com/katalvlaran/flightpath/metrics"
)

// Sentinel errors for path reconstruction and route queries.
var (
	// ErrNoRoute indicates that the destination cannot be reached from the origin.
	ErrNoRoute = errors.New("route: no route available")

	// ErrCorruptPath indicates predecessor links that do not lead back to the source.
	ErrCorruptPath = errors.New("route: corrupt predecessor chain")

	// ErrUnknownVertex indicates an origin or destination absent from the graph.
	// It wraps core.ErrUnknownVertex.
	ErrUnknownVertex = fmt.Errorf("route: airport not found: %w", core.ErrUnknownVertex)
)

// Table is the single-source search result Reconstruct reads from.
type Table interface {
	// Source returns the normalized code the search started from.
	Source() string
	// Distance returns the distance to code; ok is false when unreachable.
	Distance(code string) (float64, bool)
	// Predecessor returns the airport preceding code; ok is false for the
	// source and for unreachable airports.
	Predecessor(code string) (string, bool)
}

// Leg is one hop of a Path.
type Leg struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// String renders the leg the way itineraries are printed: "PDX to EUG".
func (l Leg) String() string { return l.From + " to " + l.To }

// Path is an ordered itinerary from source to destination.
// Airports holds at least one code; TotalDistance is the table's distance
// to the last airport.
type Path struct {
	Airports      []string `json:"airports"`
	TotalDistance float64  `json:"total_distance"`
}

// Legs returns the consecutive pairs of the path. A single-airport path has none.
func (p *Path) Legs() []Leg {
	if len(p.Airports) < 2 {
		return nil
	}
	legs := make([]Leg, 0, len(p.Airports)-1)
	for i := 1; i < len(p.Airports); i++ {
		legs = append(legs, Leg{From: p.Airports[i-1], To: p.Airports[i]})
	}

	return legs
}

// Hops returns the number of legs.
func (p *Path) Hops() int {
	if len(p.Airports) == 0 {
		return 0
	}

	return len(p.Airports) - 1
}

// Origin returns the first airport of the path.
func (p *Path) Origin() string { return p.Airports[0] }

// Destination returns the last airport of the path.
func (p *Path) Destination() string { return p.Airports[len(p.Airports)-1] }

// IsNoRoute reports whether err means the airports are not connected.
func IsNoRoute(err error) bool { return errors.Is(err, ErrNoRoute) }

// IsUnknownAirport reports whether err refers to an airport missing from the graph.
func IsUnknownAirport(err error) bool { return errors.Is(err, core.ErrUnknownVertex) }

// Outcome classifies the result of a route query for metrics labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeFound
	case IsNoRoute(err):
		return metrics.OutcomeNoRoute
	case IsUnknownAirport(err):
		return metrics.OutcomeUnknownAirport
	default:
		return metrics.OutcomeError
	}
}
