package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/flightpath/bfs"
	"github.com/katalvlaran/flightpath/core"
)

// network builds a graph from "FROM-TO" pairs with the given weights.
func network(t *testing.T, legs map[string]float64, order ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, pair := range order {
		from, to := pair[:3], pair[4:]
		for _, code := range []string{from, to} {
			if !g.HasVertex(code) {
				if err := g.AddVertex(code); err != nil {
					t.Fatal(err)
				}
			}
		}
		if err := g.AddEdge(from, to, legs[pair]); err != nil {
			t.Fatal(err)
		}
	}
	g.Freeze()

	return g
}

func hubAndSpoke(t *testing.T) *core.Graph {
	legs := map[string]float64{
		"PDX-EUG": 110.88,
		"EUG-DEN": 1020,
		"DEN-DFW": 610,
		"PDX-DFW": 1616,
		"DFW-MIA": 1121,
	}
	return network(t, legs, "PDX-EUG", "EUG-DEN", "DEN-DFW", "PDX-DFW", "DFW-MIA")
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.Search(nil, "PDX"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start airport not found
	g := hubAndSpoke(t)
	_, err := bfs.Search(g, "SEA")
	if !errors.Is(err, bfs.ErrStartVertexNotFound) || !errors.Is(err, core.ErrUnknownVertex) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.Search(g, "PDX", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestSearch_FewestLegs checks that the direct PDX→DFW route wins on leg count.
func TestSearch_FewestLegs(t *testing.T) {
	res, err := bfs.Search(hubAndSpoke(t), "pdx")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"PDX", "EUG", "DFW", "DEN", "MIA"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	want := map[string]int{"PDX": 0, "EUG": 1, "DFW": 1, "DEN": 2, "MIA": 2}
	if !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if p, _ := res.Predecessor("MIA"); p != "DFW" {
		t.Errorf("Parent[MIA] = %q; want DFW", p)
	}
	if d, ok := res.Distance("mia"); !ok || d != 2 {
		t.Errorf("Distance(MIA) = %v,%v; want 2,true", d, ok)
	}
	if res.Source() != "PDX" {
		t.Errorf("Source = %q; want PDX", res.Source())
	}
}

// TestSearch_OneWay ensures only routes leaving an airport are followed.
func TestSearch_OneWay(t *testing.T) {
	res, err := bfs.Search(hubAndSpoke(t), "MIA")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Order, []string{"MIA"}) {
		t.Errorf("Order = %v; want [MIA]", res.Order)
	}
	if _, ok := res.Distance("PDX"); ok {
		t.Error("PDX must be unreachable from MIA")
	}
}

// TestSearch_MaxDepth verifies WithMaxDepth for positive and zero (no limit) depths.
func TestSearch_MaxDepth(t *testing.T) {
	g := hubAndSpoke(t)
	if res, _ := bfs.Search(g, "PDX", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"PDX", "EUG", "DFW"}) {
		t.Errorf("MaxDepth=1: got %v", res.Order)
	}
	if res, _ := bfs.Search(g, "PDX", bfs.WithMaxDepth(0)); len(res.Order) != 5 {
		t.Errorf("MaxDepth=0: got %v; want all 5", res.Order)
	}
}

// TestSearch_FilterRoute prunes long-haul routes.
func TestSearch_FilterRoute(t *testing.T) {
	res, err := bfs.Search(hubAndSpoke(t), "PDX",
		bfs.WithFilterRoute(func(_, _ string, miles float64) bool { return miles < 1500 }))
	if err != nil {
		t.Fatal(err)
	}
	// PDX→DFW (1616) is skipped, so DFW is reached through DEN on leg 3.
	if d := res.Depth["DFW"]; d != 3 {
		t.Errorf("Depth[DFW] = %d; want 3", d)
	}
}

// TestSearch_OnVisitAbort propagates hook errors.
func TestSearch_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.Search(hubAndSpoke(t), "PDX", bfs.WithOnVisit(func(code string, _ int) error {
		if code == "DFW" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want hook error, got %v", err)
	}
}

// TestSearch_Cancelled stops on a cancelled context.
func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.Search(hubAndSpoke(t), "PDX", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestReachable lists reachable airports sorted.
func TestReachable(t *testing.T) {
	got, err := bfs.Reachable(hubAndSpoke(t), "EUG")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"DEN", "DFW", "EUG", "MIA"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Reachable(EUG) = %v; want %v", got, want)
	}
}
