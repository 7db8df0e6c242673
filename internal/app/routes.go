package app

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"

	"fuelfinder.app/internal/middleware"
)

// Routes registers the HTTP endpoints and returns the final handler chain.
//
//   - GET /v1/healthcheck       service status and readiness
//   - GET /v1/stations          stations near a coordinate, distance-sorted
//   - GET /v1/stations/nearest  closest station with route and display strings
//   - GET /metrics              cached Prometheus exposition
//
// The router is wrapped with Sentry capture and security headers.
func (app *Application) Routes(ctx context.Context) http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/v1/stations", app.stationsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/stations/nearest", app.nearestStationHandler)
	router.Handler(http.MethodGet, "/metrics", middleware.NewCachedPromHandler(ctx, prometheus.DefaultGatherer, 10*time.Second))

	handler := middleware.SentryMiddleware(router)
	return middleware.SecurityHeaders(handler)
}
