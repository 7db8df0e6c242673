package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"

	"fuelfinder.app/internal/geo"
	"fuelfinder.app/internal/metrics"
	"fuelfinder.app/internal/report"
)

// DefaultBaseURL is the public OSRM demo server.
const DefaultBaseURL = "https://router.project-osrm.org"

const (
	metersPerMile    = 1609.34
	secondsPerMinute = 60
)

// Client fetches driving routes from an OSRM-compatible API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: httpClient,
		Logger:     logger,
	}
}

// routeResponse mirrors the subset of the OSRM route response we read.
type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Legs     []struct {
			Steps []json.RawMessage `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// FetchRoute returns the driving route from start to end, or nil when no
// route could be obtained. A response code other than "Ok", an empty routes
// collection, and every transport or decode failure all collapse into nil;
// the cause survives only on the diagnostic channel (log, Sentry, failure
// counter). "No route exists" and "request failed" are indistinguishable to
// the caller.
func (c *Client) FetchRoute(ctx context.Context, start, end geo.Coordinate) *Route {
	route, err := c.fetchRoute(ctx, start, end)
	if err != nil {
		cause := report.CauseOf(err)
		c.Logger.Error("route fetch failed", "cause", cause, "error", err)
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  map[string]string{"stage": "route", "cause": cause},
			Level: sentry.LevelWarning,
		})
		metrics.FetchFailures.WithLabelValues("route", cause).Inc()
		return nil
	}

	metrics.RoutesComputed.Inc()
	return route
}

func (c *Client) fetchRoute(ctx context.Context, start, end geo.Coordinate) (*Route, error) {
	// OSRM path segments take (lon, lat) order.
	endpoint := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson&steps=true",
		c.BaseURL, start.Lon, start.Lat, end.Lon, end.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, report.Upstream(report.CauseTransport, fmt.Errorf("create request: %w", err))
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, report.Upstream(report.CauseTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, report.Upstream(report.CauseStatus, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, c.BaseURL))
	}

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, report.Upstream(report.CauseDecode, fmt.Errorf("decode route response: %w", err))
	}

	if decoded.Code != "Ok" {
		return nil, report.Upstream(report.CauseSemantic, fmt.Errorf("route response code %q", decoded.Code))
	}
	if len(decoded.Routes) == 0 {
		return nil, report.Upstream(report.CauseSemantic, fmt.Errorf("route response has no routes"))
	}

	// First alternative only; OSRM orders candidates by its own preference.
	first := decoded.Routes[0]

	path := make([]geo.Coordinate, 0, len(first.Geometry.Coordinates))
	for _, pair := range first.Geometry.Coordinates {
		if len(pair) < 2 {
			return nil, report.Upstream(report.CauseDecode, fmt.Errorf("geometry pair has %d values", len(pair)))
		}
		// Wire order is (lon, lat); swap to (lat, lon).
		path = append(path, geo.Coordinate{Lat: pair[1], Lon: pair[0]})
	}

	steps := []json.RawMessage{}
	if len(first.Legs) > 0 {
		steps = first.Legs[0].Steps
	}

	return &Route{
		Path:            path,
		DistanceMiles:   first.Distance / metersPerMile,
		DurationMinutes: first.Duration / secondsPerMinute,
		Steps:           steps,
	}, nil
}
