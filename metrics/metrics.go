// Package metrics holds the Prometheus collectors shared by the loader,
// the route queries, and the HTTP server. They are registered with the
// default registry and exposed by promhttp.Handler.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcomes used as the "outcome" label of QueriesTotal.
const (
	OutcomeFound          = "found"
	OutcomeNoRoute        = "no_route"
	OutcomeUnknownAirport = "unknown_airport"
	OutcomeError          = "error"
)

// Metrics definitions
var (
	RowsLoaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flightpath_rows_loaded_total",
		Help: "Total number of dataset rows turned into routes.",
	})

	RowsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flightpath_rows_skipped_total",
		Help: "Total number of malformed dataset rows skipped by the loader.",
	})

	Airports = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "flightpath_airports",
		Help: "Number of airports in the loaded route network.",
	})

	Routes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "flightpath_routes",
		Help: "Number of directed routes in the loaded route network.",
	})

	QueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flightpath_queries_total",
		Help: "Total number of route queries by outcome.",
	}, []string{"outcome"})

	QueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "flightpath_query_seconds",
		Help:    "Time spent answering a route query.",
		Buckets: prometheus.DefBuckets,
	})
)

// ObserveQuery records one finished query.
func ObserveQuery(outcome string, started time.Time) {
	QueriesTotal.WithLabelValues(outcome).Inc()
	QueryDuration.Observe(time.Since(started).Seconds())
}

// SetNetworkSize publishes the size of the loaded graph.
func SetNetworkSize(airports, routes int) {
	Airports.Set(float64(airports))
	Routes.Set(float64(routes))
}
