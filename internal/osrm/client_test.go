package osrm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuelfinder.app/internal/geo"
)

var (
	testStart = geo.Coordinate{Lat: 47.6062, Lon: -122.3321}
	testEnd   = geo.Coordinate{Lat: 47.6205, Lon: -122.3493}
)

func TestFetchRoute(t *testing.T) {
	var gotURL string
	srv := setupRouteServer(t, "route.json", &gotURL)
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client(), discardLogger())

	route := client.FetchRoute(context.Background(), testStart, testEnd)
	require.NotNil(t, route)

	// Coordinates go out in (lon, lat) order with geometry and steps requested.
	assert.Equal(t, "/route/v1/driving/-122.332100,47.606200;-122.349300,47.620500?overview=full&geometries=geojson&steps=true", gotURL)

	// The wire carries (lon, lat) pairs; the normalized path is (lat, lon).
	require.Len(t, route.Path, 3)
	assert.Equal(t, geo.Coordinate{Lat: 47.6062, Lon: -122.3321}, route.Path[0])
	assert.Equal(t, geo.Coordinate{Lat: 47.6205, Lon: -122.3493}, route.Path[2])

	// 3218.68 meters is exactly 2 miles; 600 seconds is 10 minutes.
	assert.InDelta(t, 2.0, route.DistanceMiles, 1e-9)
	assert.InDelta(t, 10.0, route.DurationMinutes, 1e-9)

	assert.Len(t, route.Steps, 2)
}

func TestFetchRouteAbsent(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"code not Ok", `{"code":"NoRoute","routes":[]}`, http.StatusOK},
		{"empty routes with Ok", `{"code":"Ok","routes":[]}`, http.StatusOK},
		{"server error", `{"message":"internal error"}`, http.StatusInternalServerError},
		{"malformed payload", `<html>bad gateway</html>`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, srv.Client(), discardLogger())
			route := client.FetchRoute(context.Background(), testStart, testEnd)

			assert.Nil(t, route)
		})
	}
}

func TestFetchRouteTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	client := NewClient(srv.URL, &http.Client{Timeout: time.Second}, discardLogger())
	route := client.FetchRoute(context.Background(), testStart, testEnd)

	assert.Nil(t, route)
}

func TestFetchRouteNoLegs(t *testing.T) {
	body := `{"code":"Ok","routes":[{"geometry":{"coordinates":[[-122.3321,47.6062],[-122.3493,47.6205]]},"distance":1609.34,"duration":60,"legs":[]}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client(), discardLogger())
	route := client.FetchRoute(context.Background(), testStart, testEnd)

	require.NotNil(t, route)
	assert.Empty(t, route.Steps)
	assert.InDelta(t, 1.0, route.DistanceMiles, 1e-9)
	assert.InDelta(t, 1.0, route.DurationMinutes, 1e-9)
}

func TestFetchRouteFirstAlternativeOnly(t *testing.T) {
	body := `{"code":"Ok","routes":[
		{"geometry":{"coordinates":[[-122.3321,47.6062]]},"distance":1609.34,"duration":60,"legs":[]},
		{"geometry":{"coordinates":[[-122.3493,47.6205]]},"distance":3218.68,"duration":120,"legs":[]}
	]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client(), discardLogger())
	route := client.FetchRoute(context.Background(), testStart, testEnd)

	require.NotNil(t, route)
	assert.InDelta(t, 1.0, route.DistanceMiles, 1e-9)
}
