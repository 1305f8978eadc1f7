// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, distances on small networks, the
// first-found tie-break policy, MaxDistance, InfEdgeThreshold, and a
// brute-force cross-check on random graphs.
package dijkstra_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/flightpath/core"
	"github.com/katalvlaran/flightpath/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leg struct {
	from, to string
	w        float64
}

// build creates a graph holding every airport named in legs plus extra.
func build(t testing.TB, legs []leg, extra ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	add := func(code string) {
		if !g.HasVertex(code) {
			require.NoError(t, g.AddVertex(code))
		}
	}
	for _, l := range legs {
		add(l.from)
		add(l.to)
	}
	for _, code := range extra {
		add(code)
	}
	for _, l := range legs {
		require.NoError(t, g.AddEdge(l.from, l.to, l.w))
	}
	g.Freeze()

	return g
}

// northwest is the reference network: PDX→EUG→DEN→DFW is strictly shortest.
func northwest(t testing.TB) *core.Graph {
	return build(t, []leg{
		{"PDX", "EUG", 110.88},
		{"EUG", "DEN", 1020.00},
		{"DEN", "DFW", 610.00},
		{"PDX", "DEN", 1200.00}, // 1200 > 110.88+1020
		{"PDX", "SLC", 630.00},
		{"SLC", "DFW", 1200.00}, // 1830 > 1740.88
		{"EUG", "DFW", 1700.00}, // 1810.88 > 1740.88
	}, "ANC")
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestPaths_Validation(t *testing.T) {
	_, err := dijkstra.ShortestPaths(nil, "PDX")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := northwest(t)
	_, err = dijkstra.ShortestPaths(g, "  ")
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.ShortestPaths(g, "XXX")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownVertex)
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	g := northwest(t)
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		_, _ = dijkstra.ShortestPaths(g, "PDX", dijkstra.WithMaxDistance(-1))
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		_, _ = dijkstra.ShortestPaths(g, "PDX", dijkstra.WithInfEdgeThreshold(0))
	})
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestShortestPaths_Northwest(t *testing.T) {
	table, err := dijkstra.ShortestPaths(northwest(t), "pdx")
	require.NoError(t, err)

	assert.Equal(t, "PDX", table.Source())
	assert.Equal(t, 6, table.Len())

	want := map[string]float64{
		"PDX": 0,
		"EUG": 110.88,
		"SLC": 630,
		"DEN": 1130.88,
		"DFW": 1740.88,
	}
	for code, d := range want {
		got, ok := table.Distance(code)
		require.True(t, ok, code)
		assert.InDelta(t, d, got, 1e-9, code)
	}

	// Predecessor chain DFW←DEN←EUG←PDX.
	for _, link := range [][2]string{{"DFW", "DEN"}, {"DEN", "EUG"}, {"EUG", "PDX"}} {
		p, ok := table.Predecessor(link[0])
		require.True(t, ok)
		assert.Equal(t, link[1], p)
	}
	_, ok := table.Predecessor("PDX")
	assert.False(t, ok, "source has no predecessor")

	// Isolated airport stays at +Inf.
	d, ok := table.Distance("ANC")
	assert.False(t, ok)
	assert.True(t, math.IsInf(d, 1))
	assert.False(t, table.Reachable("ANC"))
	_, ok = table.Predecessor("ANC")
	assert.False(t, ok)

	// Unknown airports behave like unreachable ones.
	assert.False(t, table.Reachable("ZZZ"))
}

func TestShortestPaths_DirectedOnly(t *testing.T) {
	// Routes are one-way: nothing flows back into PDX.
	table, err := dijkstra.ShortestPaths(northwest(t), "DFW")
	require.NoError(t, err)

	assert.Equal(t, []string{"DFW"}, table.Finalized())
	assert.False(t, table.Reachable("PDX"))
}

func TestShortestPaths_FinalizedOrderNonDecreasing(t *testing.T) {
	table, err := dijkstra.ShortestPaths(northwest(t), "PDX")
	require.NoError(t, err)

	order := table.Finalized()
	assert.Equal(t, []string{"PDX", "EUG", "SLC", "DEN", "DFW"}, order)
	prev := -1.0
	for _, code := range order {
		d, _ := table.Distance(code)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}

func TestShortestPaths_Idempotent(t *testing.T) {
	g := northwest(t)
	a, err := dijkstra.ShortestPaths(g, "PDX")
	require.NoError(t, err)
	b, err := dijkstra.ShortestPaths(g, "PDX")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotSame(t, a, b, "each query owns its table")
}

// ------------------------------------------------------------------------
// 3. Tie-break policy: equal distances keep the first-found predecessor.
// ------------------------------------------------------------------------

func TestShortestPaths_TieKeepsFirstFound(t *testing.T) {
	cases := []struct {
		name string
		legs []leg
		want string
	}{
		{
			name: "B inserted first",
			legs: []leg{{"A", "B", 1}, {"A", "C", 1}, {"B", "D", 1}, {"C", "D", 1}},
			want: "B",
		},
		{
			name: "C inserted first",
			legs: []leg{{"A", "C", 1}, {"A", "B", 1}, {"B", "D", 1}, {"C", "D", 1}},
			want: "C",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := dijkstra.ShortestPaths(build(t, tc.legs), "A")
			require.NoError(t, err)
			d, _ := table.Distance("D")
			assert.Equal(t, 2.0, d)
			p, _ := table.Predecessor("D")
			assert.Equal(t, tc.want, p)
		})
	}
}

func TestShortestPaths_ZeroWeightAndMultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	for _, c := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(c))
	}
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("A", "B", 2)) // cheaper parallel route
	require.NoError(t, g.AddEdge("B", "C", 0))

	table, err := dijkstra.ShortestPaths(g, "A")
	require.NoError(t, err)
	d, _ := table.Distance("C")
	assert.Equal(t, 2.0, d)
}

// ------------------------------------------------------------------------
// 4. MaxDistance / InfEdgeThreshold
// ------------------------------------------------------------------------

func TestShortestPaths_MaxDistance(t *testing.T) {
	table, err := dijkstra.ShortestPaths(northwest(t), "PDX", dijkstra.WithMaxDistance(700))
	require.NoError(t, err)

	assert.True(t, table.Reachable("EUG"))
	assert.True(t, table.Reachable("SLC"))
	assert.False(t, table.Reachable("DEN"))
	assert.False(t, table.Reachable("DFW"))

	table, err = dijkstra.ShortestPaths(northwest(t), "PDX", dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"PDX"}, table.Finalized())
}

func TestShortestPaths_InfEdgeThreshold(t *testing.T) {
	// Routes of 1000+ miles are walls: EUG→DEN and the others are cut off, SLC survives.
	table, err := dijkstra.ShortestPaths(northwest(t), "PDX", dijkstra.WithInfEdgeThreshold(1000))
	require.NoError(t, err)

	assert.True(t, table.Reachable("EUG"))
	assert.True(t, table.Reachable("SLC"))
	assert.False(t, table.Reachable("DEN"))
	assert.False(t, table.Reachable("DFW"))
}

// ------------------------------------------------------------------------
// 5. Property: agreement with Floyd–Warshall on random networks.
// ------------------------------------------------------------------------

func floyd(codes []string, legs []leg) map[string]map[string]float64 {
	d := make(map[string]map[string]float64, len(codes))
	for _, a := range codes {
		d[a] = make(map[string]float64, len(codes))
		for _, b := range codes {
			d[a][b] = math.Inf(1)
		}
		d[a][a] = 0
	}
	for _, l := range legs {
		if l.w < d[l.from][l.to] {
			d[l.from][l.to] = l.w
		}
	}
	for _, k := range codes {
		for _, i := range codes {
			for _, j := range codes {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}

	return d
}

func TestShortestPaths_MatchesFloydWarshall(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		n := 3 + r.Intn(10)
		codes := make([]string, n)
		for i := range codes {
			codes[i] = fmt.Sprintf("A%02d", i)
		}
		seen := map[[2]string]bool{}
		var legs []leg
		for i := 0; i < n*3; i++ {
			from, to := codes[r.Intn(n)], codes[r.Intn(n)]
			if from == to || seen[[2]string{from, to}] {
				continue
			}
			seen[[2]string{from, to}] = true
			legs = append(legs, leg{from, to, float64(r.Intn(2000)) + r.Float64()})
		}
		g := build(t, legs, codes...)
		want := floyd(codes, legs)

		for _, src := range codes {
			table, err := dijkstra.ShortestPaths(g, src)
			require.NoError(t, err)
			for _, dst := range codes {
				got, ok := table.Distance(dst)
				if math.IsInf(want[src][dst], 1) {
					assert.False(t, ok, "round %d %s→%s", round, src, dst)
					continue
				}
				require.True(t, ok, "round %d %s→%s", round, src, dst)
				assert.InDelta(t, want[src][dst], got, 1e-6, "round %d %s→%s", round, src, dst)
			}
		}
	}
}
