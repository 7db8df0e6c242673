package app

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"fuelfinder.app/internal/metrics"
)

// latencyTrackingRoundTripper wraps a RoundTripper to record the latency of
// each outgoing request in the Prometheus histogram, labeled by URL
// (without query parameters), method and status.
type latencyTrackingRoundTripper struct {
	next http.RoundTripper
}

func (rt *latencyTrackingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := rt.next.RoundTrip(req)
	duration := time.Since(start).Seconds()

	status := "error"
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}

	// Query parameters carry coordinates; keep them out of metric labels.
	safeURL := req.URL.Scheme + "://" + req.URL.Host + req.URL.Path

	metrics.OutgoingLatency.WithLabelValues(safeURL, req.Method, status).Observe(duration)

	return resp, err
}

// NewPooledClient returns the HTTP client shared by both upstream clients.
// Connection reuse matters because every station lookup issues at least two
// requests (Overpass, then OSRM) and mobile clients refresh often. The 10s
// overall timeout is a deliberate bound the upstream services do not
// provide themselves.
func NewPooledClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
	}

	return &http.Client{
		Transport: &latencyTrackingRoundTripper{next: transport},
		Timeout:   10 * time.Second,
	}
}
