package osrm

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("Failed to read fixture file: %v", err)
	}
	return data
}

// setupRouteServer serves the given fixture for every request and records
// the last request URL for assertions.
func setupRouteServer(t *testing.T, fixture string, lastURL *string) *httptest.Server {
	t.Helper()

	body := readFixture(t, fixture)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastURL != nil {
			*lastURL = r.URL.String()
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
}
