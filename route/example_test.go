package route_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flightpath/core"
	"github.com/katalvlaran/flightpath/route"
)

// ExampleFindRoute prints an itinerary the way the interactive session does.
func ExampleFindRoute() {
	g := core.NewGraph()
	for _, code := range []string{"PDX", "EUG", "DEN", "DFW", "ANC"} {
		_ = g.AddVertex(code)
	}
	_ = g.AddEdge("PDX", "EUG", 110.88)
	_ = g.AddEdge("EUG", "DEN", 1020)
	_ = g.AddEdge("DEN", "DFW", 610)
	g.Freeze()

	p, err := route.FindRoute(g, "pdx", "dfw")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, leg := range p.Legs() {
		fmt.Println(leg)
	}
	fmt.Printf("Total Miles: %.2f miles.\n", p.TotalDistance)

	_, err = route.FindRoute(g, "PDX", "ANC")
	fmt.Println(errors.Is(err, route.ErrNoRoute))
	// Output:
	// PDX to EUG
	// EUG to DEN
	// DEN to DFW
	// Total Miles: 1740.88 miles.
	// true
}
