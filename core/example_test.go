package core_test

import (
	"fmt"

	"github.com/katalvlaran/flightpath/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an empty route network.
	g := core.NewGraph()

	// 2) Airports must exist before routes reference them; codes are normalized.
	_ = g.AddVertex("pdx", core.WithCity("Portland"))
	_ = g.AddVertex("EUG", core.WithCity("Eugene"))

	// 3) Routes are one-way.
	_ = g.AddEdge("PDX", "eug", 110.88)

	fmt.Println("Airports:", g.Vertices())
	fmt.Println("PDX→EUG?", g.HasEdge("PDX", "EUG"))
	fmt.Println("EUG→PDX?", g.HasEdge("EUG", "PDX"))

	// 4) Walk the outgoing routes lazily.
	seq, _ := g.Neighbors("PDX")
	for to, miles := range seq {
		fmt.Printf("PDX to %s: %.2f\n", to, miles)
	}

	// Output:
	// Airports: [EUG PDX]
	// PDX→EUG? true
	// EUG→PDX? false
	// PDX to EUG: 110.88
}
