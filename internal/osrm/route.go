// Package osrm fetches driving routes from an OSRM-compatible directions
// API and normalizes them (lat/lon axis order, US units).
package osrm

import (
	"encoding/json"

	"fuelfinder.app/internal/geo"
)

// Route is a normalized driving route between two coordinates.
//
// Path is ordered start to end in (lat, lon) axis order, swapped from the
// (lon, lat) pairs the wire format carries. Steps are the turn-by-turn
// records of the first leg, kept opaque for the presentation layer.
type Route struct {
	Path            []geo.Coordinate  `json:"path"`
	DistanceMiles   float64           `json:"distanceMiles"`
	DurationMinutes float64           `json:"durationMinutes"`
	Steps           []json.RawMessage `json:"steps"`
}
