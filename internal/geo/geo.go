package geo

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// earthRadiusMiles is the mean radius of the Earth in miles, the value
// conventionally used for haversine distance in US-unit applications.
const earthRadiusMiles = 3959

// metersPerDegree approximates one degree of latitude as 111 km. The same
// divisor is applied to longitude, which widens boxes away from the equator.
// This is a known accuracy limitation of the upstream query contract, kept
// deliberately; do not replace it with a latitude-aware conversion.
const metersPerDegree = 111000.0

// Coordinate is an immutable WGS84 point in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Validate checks that the coordinate falls within the valid geographic
// bounds: latitude in [-90, 90] and longitude in [-180, 180].
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", c.Lon)
	}
	return nil
}

// DistanceMiles returns the great-circle distance between two coordinates
// in miles. It is symmetric and returns 0 (modulo floating-point error)
// when both arguments are equal.
func DistanceMiles(a, b Coordinate) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p1.Distance(p2).Radians() * earthRadiusMiles
}

// BoundingBox defines the corners of a lat/lon box.
type BoundingBox struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// Contains checks whether the given latitude and longitude are within the bounding box.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// BoxAround builds an axis-aligned bounding box spanning radiusMeters in
// each direction from center, using the fixed meters-per-degree conversion.
func BoxAround(center Coordinate, radiusMeters float64) BoundingBox {
	delta := radiusMeters / metersPerDegree
	return BoundingBox{
		MinLat: center.Lat - delta,
		MinLon: center.Lon - delta,
		MaxLat: center.Lat + delta,
		MaxLon: center.Lon + delta,
	}
}
