package middleware

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CachedPromHandler serves a periodically refreshed snapshot of the
// Prometheus exposition instead of gathering metrics on every scrape.
// Gathering is cheap here, but scrape bursts during incidents should never
// compete with in-flight station lookups.
type CachedPromHandler struct {
	mu    sync.RWMutex
	cache []byte
	ttl   time.Duration
	h     http.Handler
}

// NewCachedPromHandler starts a background refresh loop that stops when ctx
// is cancelled. ttl should be at most the Prometheus scrape interval.
func NewCachedPromHandler(ctx context.Context, gatherer prometheus.Gatherer, ttl time.Duration) *CachedPromHandler {
	c := &CachedPromHandler{
		ttl: ttl,
		h:   promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
	}

	go c.refreshLoop(ctx)
	return c
}

func (c *CachedPromHandler) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			req, err := http.NewRequest(http.MethodGet, "/metrics", nil)
			if err != nil {
				continue
			}

			var buf bytes.Buffer
			rec := &responseRecorder{buf: &buf}
			c.h.ServeHTTP(rec, req)

			c.mu.Lock()
			c.cache = buf.Bytes()
			c.mu.Unlock()
		}
	}
}

// ServeHTTP serves the cached exposition, falling back to a live gather
// while the cache is still empty right after startup.
func (c *CachedPromHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.mu.RLock()
	cached := c.cache
	c.mu.RUnlock()

	if len(cached) == 0 {
		c.h.ServeHTTP(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
	w.Write(cached)
}

// responseRecorder captures a handler's body so the refresh loop can reuse
// promhttp without a live network response.
type responseRecorder struct {
	buf    *bytes.Buffer
	header http.Header
}

func (r *responseRecorder) Header() http.Header {
	if r.header == nil {
		r.header = make(http.Header)
	}
	return r.header
}

func (r *responseRecorder) Write(b []byte) (int, error) { return r.buf.Write(b) }

func (r *responseRecorder) WriteHeader(statusCode int) {}
