// Package overpass queries an Overpass-compatible point-of-interest API for
// fuel stations around a coordinate and normalizes the results.
package overpass

// DefaultLabel names a station whose element carries neither a name nor a
// brand tag.
const DefaultLabel = "Gas Station"

// Station is one fuel station produced for a specific query coordinate.
//
// DistanceMiles belongs to the query, not the station: it is the
// great-circle distance from the center the fetch was issued for, and is
// recomputed on every fetch. Station collections are rebuilt wholesale per
// fetch; no identity persists across calls.
type Station struct {
	ID            int64             `json:"id"`
	Lat           float64           `json:"lat"`
	Lon           float64           `json:"lon"`
	Name          string            `json:"name"`
	Brand         string            `json:"brand,omitempty"`
	Operator      string            `json:"operator,omitempty"`
	Address       string            `json:"address,omitempty"`
	DistanceMiles float64           `json:"distanceMiles"`
	Tags          map[string]string `json:"tags,omitempty"`
}

// Nearest returns the first station of a distance-sorted slice. It is a
// plain accessor: FetchNearbyStations guarantees ascending order, and
// Nearest performs no sorting or validation of its own.
func Nearest(stations []Station) (Station, bool) {
	if len(stations) == 0 {
		return Station{}, false
	}
	return stations[0], true
}
