// Package metrics provides Prometheus metrics for route searches, provider
// fetches and the HTTP server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Registry is the Prometheus registry for this metrics instance
	Registry *prometheus.Registry

	// Route search metrics
	RouteSearchesTotal  *prometheus.CounterVec
	RouteSearchDuration prometheus.Histogram
	RouteLines          prometheus.Histogram
	RouteCacheHitsTotal prometheus.Counter

	// Provider metrics
	ProviderRequestsTotal *prometheus.CounterVec
	SnapshotLines         prometheus.Gauge
	SnapshotStops         prometheus.Gauge

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates and registers all application metrics with a new registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	routeSearchesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mbta_route_searches_total",
			Help: "Total number of route searches by outcome",
		},
		[]string{"outcome"},
	)

	routeSearchDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mbta_route_search_duration_seconds",
		Help:    "Route search latency distribution",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	routeLines := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mbta_route_lines",
		Help:    "Number of lines in found routes",
		Buckets: prometheus.LinearBuckets(1, 1, 8),
	})

	routeCacheHitsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mbta_route_cache_hits_total",
		Help: "Route searches answered from the result cache",
	})

	providerRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mbta_provider_requests_total",
			Help: "Requests made to the transit data provider",
		},
		[]string{"endpoint", "status"},
	)

	snapshotLines := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mbta_snapshot_lines",
		Help: "Lines in the loaded snapshot",
	})

	snapshotStops := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mbta_snapshot_stops",
		Help: "Distinct stops in the loaded snapshot",
	})

	httpRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mbta_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mbta_http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	registry.MustRegister(
		routeSearchesTotal,
		routeSearchDuration,
		routeLines,
		routeCacheHitsTotal,
		providerRequestsTotal,
		snapshotLines,
		snapshotStops,
		httpRequestsTotal,
		httpRequestDuration,
	)

	return &Metrics{
		Registry:              registry,
		RouteSearchesTotal:    routeSearchesTotal,
		RouteSearchDuration:   routeSearchDuration,
		RouteLines:            routeLines,
		RouteCacheHitsTotal:   routeCacheHitsTotal,
		ProviderRequestsTotal: providerRequestsTotal,
		SnapshotLines:         snapshotLines,
		SnapshotStops:         snapshotStops,
		HTTPRequestsTotal:     httpRequestsTotal,
		HTTPRequestDuration:   httpRequestDuration,
	}
}

// ObserveSearch records one route search. outcome is found, exhausted,
// unknown_stop or error; lines is ignored unless the route was found.
// Safe to call on a nil receiver.
func (m *Metrics) ObserveSearch(outcome string, lines int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RouteSearchesTotal.WithLabelValues(outcome).Inc()
	m.RouteSearchDuration.Observe(elapsed.Seconds())
	if outcome == "found" {
		m.RouteLines.Observe(float64(lines))
	}
}

// ObserveCacheHit counts a memoized route answer.
func (m *Metrics) ObserveCacheHit() {
	if m == nil {
		return
	}
	m.RouteCacheHitsTotal.Inc()
}

// ObserveProviderRequest counts one provider call.
func (m *Metrics) ObserveProviderRequest(endpoint, status string) {
	if m == nil {
		return
	}
	m.ProviderRequestsTotal.WithLabelValues(endpoint, status).Inc()
}

// SetSnapshotSize records the size of the loaded snapshot.
func (m *Metrics) SetSnapshotSize(lines, stops int) {
	if m == nil {
		return
	}
	m.SnapshotLines.Set(float64(lines))
	m.SnapshotStops.Set(float64(stops))
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
