// Package server exposes route queries over HTTP with gorilla/mux.
//
// Endpoints:
//
//	GET /api/route?from=PDX&to=DFW[&mode=fewest]
//	GET /api/airports/{code}
//	GET /api/airports/{code}/reachable
//	GET /healthz
//	GET /metrics
//
// The graph is read-only; queries are still handled one at a time.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/katalvlaran/flightpath/core"
	"github.com/katalvlaran/flightpath/dijkstra"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Query modes accepted by /api/route.
const (
	ModeShortest = "shortest"
	ModeFewest   = "fewest"
)

// Server answers route queries against one loaded graph.
type Server struct {
	graph     *core.Graph
	log       logrus.FieldLogger
	routeOpts []dijkstra.Option
	addr      string

	mu  sync.Mutex // serializes queries
	srv *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithAddr sets the listen address used by Run.
func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

// WithRouteOptions passes engine options to every shortest-route query.
func WithRouteOptions(opts ...dijkstra.Option) Option {
	return func(s *Server) { s.routeOpts = append(s.routeOpts, opts...) }
}

// New returns a Server for g.
func New(g *core.Graph, opts ...Option) *Server {
	s := &Server{
		graph: g,
		log:   logrus.StandardLogger(),
		addr:  ":8080",
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RegisterRoutes mounts every endpoint on router.
func (s *Server) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/route", s.FindRoute).Methods(http.MethodGet)
	router.HandleFunc("/api/airports/{code}", s.GetAirport).Methods(http.MethodGet)
	router.HandleFunc("/api/airports/{code}/reachable", s.GetReachable).Methods(http.MethodGet)
	router.HandleFunc("/healthz", s.Health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

// Handler returns a router with every endpoint registered.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	s.RegisterRoutes(r)

	return r
}

// Run listens on the configured address until ctx is done, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.addr).Info("route server starting")
		errc <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("route server stopping")
		return s.srv.Shutdown(shutdownCtx)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
