package osrm

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/dnaeon/go-vcr.v4/pkg/recorder"
)

func TestFetchRouteWithVCR(t *testing.T) {
	rec, err := recorder.New(filepath.Join("testdata", "vcr", "osrm_route"))
	if err != nil {
		t.Fatalf("Failed to create recorder: %v", err)
	}
	defer rec.Stop()

	client := NewClient(
		DefaultBaseURL,
		&http.Client{Transport: rec, Timeout: 10 * time.Second},
		discardLogger(),
	)

	route := client.FetchRoute(context.Background(), testStart, testEnd)
	if route == nil {
		t.Fatal("expected a route from cassette, got nil")
	}

	if len(route.Path) != 3 {
		t.Fatalf("path has %d points, want 3", len(route.Path))
	}
	if route.Path[0].Lat != 47.6062 || route.Path[0].Lon != -122.3321 {
		t.Errorf("path start = %+v, want axis-swapped (47.6062, -122.3321)", route.Path[0])
	}
	if got, want := route.DistanceMiles, 2.0; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("DistanceMiles = %v, want %v", got, want)
	}
	if got, want := route.DurationMinutes, 10.0; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("DurationMinutes = %v, want %v", got, want)
	}
	if len(route.Steps) != 2 {
		t.Errorf("steps = %d, want 2", len(route.Steps))
	}
}
