package overpass

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

// setupOverpassServer serves the given fixture for every request and
// records the last request's form body for assertions.
func setupOverpassServer(t *testing.T, fixture string, lastQuery *string) *httptest.Server {
	t.Helper()

	body := readFixture(t, fixture)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err == nil && lastQuery != nil {
			*lastQuery = r.PostForm.Get("data")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
}
