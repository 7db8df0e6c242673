package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"

	"fuelfinder.app/internal/geo"
	"fuelfinder.app/internal/metrics"
	"fuelfinder.app/internal/report"
)

const (
	// DefaultBaseURL is the public Overpass API interpreter endpoint.
	DefaultBaseURL = "https://overpass-api.de/api/interpreter"

	// DefaultRadiusMeters is the search radius applied when the caller does
	// not supply one.
	DefaultRadiusMeters = 5000
)

// Client fetches fuel stations from an Overpass-compatible API.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func NewClient(baseURL, userAgent string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		BaseURL:    baseURL,
		UserAgent:  userAgent,
		HTTPClient: httpClient,
		Logger:     logger,
	}
}

// element mirrors the subset of the Overpass JSON response we read. Ways
// and relations carry their centroid in center; nodes carry lat/lon
// directly.
type element struct {
	ID     int64   `json:"id"`
	Type   string  `json:"type"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

// coordinate resolves an element's representative point: the centroid for
// areas, else the element's own position. The zero coordinate doubles as
// "no position decoded" since Overpass never returns features at exactly
// (0, 0) for a bounded fuel-station query.
func (e element) coordinate() (geo.Coordinate, bool) {
	if e.Center != nil {
		return geo.Coordinate{Lat: e.Center.Lat, Lon: e.Center.Lon}, true
	}
	if e.Lat == 0 && e.Lon == 0 {
		return geo.Coordinate{}, false
	}
	return geo.Coordinate{Lat: e.Lat, Lon: e.Lon}, true
}

type overpassResponse struct {
	Elements []element `json:"elements"`
}

// buildQuery renders the Overpass QL query for fuel-station nodes and ways
// inside the bounding box. "out center" asks the API to include centroids
// for ways so area features resolve to a point.
func buildQuery(box geo.BoundingBox) string {
	bbox := fmt.Sprintf("%f,%f,%f,%f", box.MinLat, box.MinLon, box.MaxLat, box.MaxLon)
	return fmt.Sprintf(
		`[out:json][timeout:25];(node["amenity"="fuel"](%s);way["amenity"="fuel"](%s););out center;`,
		bbox, bbox,
	)
}

// FetchNearbyStations returns the fuel stations within radiusMeters of
// center, sorted ascending by great-circle distance from center.
//
// Every failure class (transport, non-success status, malformed payload)
// yields an empty slice: callers must treat an empty result as "found
// nothing", never as a signal they can branch on. The cause is preserved on
// the diagnostic channel only (log, Sentry, failure counter).
func (c *Client) FetchNearbyStations(ctx context.Context, center geo.Coordinate, radiusMeters float64) []Station {
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadiusMeters
	}

	stations, err := c.fetchNearbyStations(ctx, center, radiusMeters)
	if err != nil {
		cause := report.CauseOf(err)
		c.Logger.Error("station fetch failed", "cause", cause, "error", err)
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  map[string]string{"stage": "stations", "cause": cause},
			Level: sentry.LevelWarning,
		})
		metrics.FetchFailures.WithLabelValues("stations", cause).Inc()
		return []Station{}
	}

	metrics.StationsFound.Set(float64(len(stations)))
	return stations
}

func (c *Client) fetchNearbyStations(ctx context.Context, center geo.Coordinate, radiusMeters float64) ([]Station, error) {
	box := geo.BoxAround(center, radiusMeters)
	form := url.Values{"data": {buildQuery(box)}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, report.Upstream(report.CauseTransport, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, report.Upstream(report.CauseTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, report.Upstream(report.CauseStatus, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, c.BaseURL))
	}

	var decoded overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, report.Upstream(report.CauseDecode, fmt.Errorf("decode overpass response: %w", err))
	}

	stations := make([]Station, 0, len(decoded.Elements))
	for _, el := range decoded.Elements {
		coord, ok := el.coordinate()
		if !ok {
			continue
		}
		stations = append(stations, newStation(el, coord, center))
	}

	// Ties keep the upstream order.
	sort.SliceStable(stations, func(i, j int) bool {
		return stations[i].DistanceMiles < stations[j].DistanceMiles
	})

	return stations, nil
}

// newStation builds a Station record from a raw element, computing its
// distance from the query center. A missing name falls back to the brand
// tag, then to the default label.
func newStation(el element, coord, center geo.Coordinate) Station {
	name := el.Tags["name"]
	if name == "" {
		name = el.Tags["brand"]
	}
	if name == "" {
		name = DefaultLabel
	}

	return Station{
		ID:            el.ID,
		Lat:           coord.Lat,
		Lon:           coord.Lon,
		Name:          name,
		Brand:         el.Tags["brand"],
		Operator:      el.Tags["operator"],
		Address:       FormatAddress(el.Tags),
		DistanceMiles: geo.DistanceMiles(center, coord),
		Tags:          el.Tags,
	}
}
