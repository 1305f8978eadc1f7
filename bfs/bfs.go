// Package bfs provides breadth-first search over the route network,
// returning leg counts, parent links, and visit order.
//
// BFS explores airports in increasing number of legs from a start airport,
// with an optional visit hook, depth limiting, and route filtering.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/flightpath/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs an airport with its BFS depth.
type queueItem struct {
	code  string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Search runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func Search(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start airport
	startCode := core.NormalizeCode(start)
	if !g.HasVertex(startCode) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Start:  startCode,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start airport (no parent)
	w.enqueue(startCode, 0, "")

	return w.res, w.loop()
}

// Reachable returns every airport reachable from start, start included,
// sorted ascending.
func Reachable(g *core.Graph, start string, opts ...Option) ([]string, error) {
	res, err := Search(g, start, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(res.Order))
	copy(out, res.Order)
	sort.Strings(out)

	return out, nil
}

// enqueue marks code visited at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(code string, d int, parent string) {
	w.visited[code] = true
	w.res.Depth[code] = d
	if parent != "" {
		w.res.Parent[code] = parent
	}
	w.queue = append(w.queue, queueItem{code: code, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the airport in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.code)
	if err := w.opts.OnVisit(item.code, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.code, err)
	}

	return nil
}

// enqueueNeighbors walks outgoing routes, applies filtering and MaxDepth,
// and enqueues each unseen destination.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	neighbors, err := w.graph.Neighbors(item.code)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.code, err)
	}
	for nbr, miles := range neighbors {
		if w.visited[nbr] {
			continue
		}
		if !w.opts.FilterRoute(item.code, nbr, miles) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.code)
	}

	return nil
}
