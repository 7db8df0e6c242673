package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fuelfinder.app/internal/config"
)

const stationsFixture = `{
	"elements": [
		{
			"type": "way",
			"id": 222222,
			"center": {"lat": 47.63, "lon": -122.34},
			"tags": {"amenity": "fuel", "brand": "Arco"}
		},
		{
			"type": "node",
			"id": 111111,
			"lat": 47.61,
			"lon": -122.335,
			"tags": {"amenity": "fuel", "name": "Shell Downtown"}
		}
	]
}`

const routeFixture = `{
	"code": "Ok",
	"routes": [
		{
			"geometry": {"coordinates": [[-122.3321, 47.6062], [-122.335, 47.61]]},
			"distance": 3218.68,
			"duration": 600,
			"legs": [{"steps": [{"name": "4th Avenue"}]}]
		}
	]
}`

func newTestApplication(t *testing.T, overpassURL, osrmURL string) *Application {
	t.Helper()

	cfg := config.New(4000, "testing")
	cfg.OverpassURL = overpassURL
	cfg.OSRMURL = osrmURL

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := &http.Client{Timeout: 5 * time.Second}

	return New(cfg, logger, client, "test-version")
}

func jsonServer(t *testing.T, body string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func failingServer(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
}
