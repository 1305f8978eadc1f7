// Package core defines the central Graph, Airport and Route types of the
// route network, and provides thread-safe primitives for building and
// querying it.
//
// This file declares Airport, Route, Graph, GraphOption, VertexOption,
// sentinel errors, NormalizeCode and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyCode        - airport code is blank after normalization.
//	ErrDuplicateVertex  - airport code already present.
//	ErrUnknownVertex    - requested airport does not exist.
//	ErrInvalidWeight    - route weight is negative, NaN or infinite.
//	ErrLoopNotAllowed   - self-route when loops are disabled.
//	ErrDuplicateEdge    - second from→to route when multi-edges are disabled.
//	ErrFrozen           - mutation attempted after Freeze.
package core

import (
	"errors"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyCode indicates that the provided airport code is empty.
	ErrEmptyCode = errors.New("core: airport code is empty")

	// ErrDuplicateVertex indicates an airport with the same code already exists.
	ErrDuplicateVertex = errors.New("core: duplicate airport")

	// ErrUnknownVertex indicates an operation referenced a non-existent airport.
	ErrUnknownVertex = errors.New("core: unknown airport")

	// ErrInvalidWeight indicates a negative or non-finite route weight.
	ErrInvalidWeight = errors.New("core: invalid route weight")

	// ErrLoopNotAllowed indicates a self-route was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-route not allowed")

	// ErrDuplicateEdge indicates a parallel route was attempted when multi-edges are disabled.
	ErrDuplicateEdge = errors.New("core: duplicate route")

	// ErrFrozen indicates a mutation on a graph that has been frozen after load.
	ErrFrozen = errors.New("core: graph is frozen")
)

// Airport is a vertex of the route network.
//
// Code uniquely identifies the Airport within its Graph and is always stored
// in normalized (upper-case) form. Every other field is optional.
type Airport struct {
	// Code is the airport code, e.g. "SFO".
	Code string

	// ID is the numeric airport id from the dataset (0 when absent).
	ID int

	// City the airport serves.
	City string

	// Name is the full airport name.
	Name string

	// Country the airport is located in.
	Country string

	// Latitude and Longitude in decimal degrees.
	Latitude  float64
	Longitude float64

	// hasLocation reports whether Latitude/Longitude were supplied.
	hasLocation bool
}

// HasLocation reports whether the airport carries coordinates.
func (a Airport) HasLocation() bool { return a.hasLocation }

// Route is a directed, weighted connection From→To.
type Route struct {
	// From is the origin airport code.
	From string

	// To is the destination airport code.
	To string

	// Weight is the route distance in miles; always finite and ≥ 0.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel routes between the same pair of airports.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-routes (an airport to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// VertexOption sets optional attributes of an Airport when it is added.
type VertexOption func(*Airport)

// WithID sets the numeric airport id.
func WithID(id int) VertexOption {
	return func(a *Airport) { a.ID = id }
}

// WithCity sets the city name.
func WithCity(city string) VertexOption {
	return func(a *Airport) { a.City = city }
}

// WithName sets the airport's full name.
func WithName(name string) VertexOption {
	return func(a *Airport) { a.Name = name }
}

// WithCountry sets the country name.
func WithCountry(country string) VertexOption {
	return func(a *Airport) { a.Country = country }
}

// WithLocation sets the airport coordinates in decimal degrees.
func WithLocation(lat, lon float64) VertexOption {
	return func(a *Airport) {
		a.Latitude = lat
		a.Longitude = lon
		a.hasLocation = true
	}
}

// Graph is the in-memory route network.
//
// mu guards every field below it. Adjacency slices keep routes in insertion
// order so neighbor iteration, and therefore every algorithm built on it,
// is deterministic.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowMulti bool // allow parallel routes
	allowLoops bool // allow self-routes
	frozen     bool // reject all mutations

	// Storage
	airports  map[string]*Airport // code → Airport
	adjacency map[string][]*Route // code → outgoing routes, insertion order
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default, parallel routes and self-routes are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		airports:  make(map[string]*Airport),
		adjacency: make(map[string][]*Route),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NormalizeCode returns the canonical form of an airport code: surrounding
// whitespace removed and letters upper-cased.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
