package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OutgoingLatency tracks the duration of outgoing HTTP requests to the
	// upstream map-data and routing services, labeled by URL (scheme, host
	// and path only), method and response status.
	OutgoingLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fuelfinder_outgoing_request_duration_seconds",
			Help:    "Duration of outgoing HTTP requests to upstream services",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"url", "method", "status"},
	)
)

var (
	// FetchFailures counts upstream fetch failures that the public fetcher
	// contract swallows (empty result returned to the caller). The cause
	// label distinguishes transport, status, decode and semantic failures.
	FetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fuelfinder_fetch_failures_total",
			Help: "Upstream fetch failures by stage (stations, route) and cause",
		},
		[]string{"stage", "cause"},
	)
)

var (
	StationsFound = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fuelfinder_stations_found",
		Help: "Number of stations returned by the most recent station fetch",
	})

	NearestStationDistanceMiles = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fuelfinder_nearest_station_distance_miles",
		Help: "Great-circle distance to the most recently selected nearest station",
	})

	RoutesComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fuelfinder_routes_computed_total",
		Help: "Number of driving routes successfully fetched and normalized",
	})
)
