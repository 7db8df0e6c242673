package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"fuelfinder.app/internal/format"
	"fuelfinder.app/internal/geo"
	"fuelfinder.app/internal/metrics"
	"fuelfinder.app/internal/overpass"
	"fuelfinder.app/internal/osrm"
)

// HealthStatus is the JSON body of /v1/healthcheck.
type HealthStatus struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
	Ready       bool   `json:"ready"`
}

func (app *Application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	ready := app.Stations != nil && app.Directions != nil

	status := HealthStatus{
		Status:      "available",
		Environment: app.Config.Env,
		Version:     app.Version,
		Ready:       ready,
	}

	code := http.StatusOK
	if !ready {
		code = http.StatusInternalServerError
	}
	app.writeJSON(w, code, status)
}

// StationsResponse is the JSON body of /v1/stations. An empty list is a
// valid "found nothing" answer, indistinguishable by design from a failed
// upstream fetch.
type StationsResponse struct {
	Stations []overpass.Station `json:"stations"`
	Count    int                `json:"count"`
}

func (app *Application) stationsHandler(w http.ResponseWriter, r *http.Request) {
	center, radius, err := queryCoordinate(r, app.Config.RadiusMeters)
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	stations := app.Stations.FetchNearbyStations(r.Context(), center, radius)

	app.writeJSON(w, http.StatusOK, StationsResponse{
		Stations: stations,
		Count:    len(stations),
	})
}

// NearestStationResponse pairs the closest station with the route computed
// for it in this same request. Route and ETA are absent when the directions
// fetch came back empty; the station alone is still a valid answer.
type NearestStationResponse struct {
	Station       overpass.Station `json:"station"`
	Route         *osrm.Route      `json:"route,omitempty"`
	ETA           string           `json:"eta,omitempty"`
	DistanceLabel string           `json:"distanceLabel"`
}

func (app *Application) nearestStationHandler(w http.ResponseWriter, r *http.Request) {
	center, radius, err := queryCoordinate(r, app.Config.RadiusMeters)
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	stations := app.Stations.FetchNearbyStations(r.Context(), center, radius)

	station, ok := overpass.Nearest(stations)
	if !ok {
		app.errorResponse(w, http.StatusNotFound, "no stations found")
		return
	}
	metrics.NearestStationDistanceMiles.Set(station.DistanceMiles)

	// The route is computed for exactly this station and never outlives
	// the request, so it cannot go stale against a moved reference point.
	route := app.Directions.FetchRoute(r.Context(), center, geo.Coordinate{Lat: station.Lat, Lon: station.Lon})

	resp := NearestStationResponse{
		Station:       station,
		Route:         route,
		DistanceLabel: format.DistanceLabel(station.DistanceMiles),
	}
	if route != nil {
		resp.ETA = format.ETA(route.DurationMinutes)
	}

	app.writeJSON(w, http.StatusOK, resp)
}

// queryCoordinate parses and validates the lat/lon/radius query parameters.
// Coordinates are validated here, at the API boundary; everything below it
// assumes in-range values.
func queryCoordinate(r *http.Request, defaultRadius float64) (geo.Coordinate, float64, error) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		return geo.Coordinate{}, 0, fmt.Errorf("invalid or missing lat parameter")
	}

	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		return geo.Coordinate{}, 0, fmt.Errorf("invalid or missing lon parameter")
	}

	center := geo.Coordinate{Lat: lat, Lon: lon}
	if err := center.Validate(); err != nil {
		return geo.Coordinate{}, 0, err
	}

	radius := defaultRadius
	if raw := q.Get("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			return geo.Coordinate{}, 0, fmt.Errorf("invalid radius parameter")
		}
	}

	return center, radius, nil
}

func (app *Application) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.Logger.Error("failed to encode response", "error", err)
	}
}

func (app *Application) errorResponse(w http.ResponseWriter, status int, message string) {
	app.writeJSON(w, status, map[string]string{"error": message})
}
