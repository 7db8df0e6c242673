package config

import (
	"fuelfinder.app/internal/osrm"
	"fuelfinder.app/internal/overpass"
)

// Config holds all the configuration settings for the application. It is
// assembled once at startup from flags and environment and read-only after
// that; there is no remote refresh path.
type Config struct {
	Port int
	Env  string

	// OverpassURL is the interpreter endpoint of the point-of-interest API.
	OverpassURL string
	// OSRMURL is the base URL of the driving-directions API.
	OSRMURL string
	// UserAgent identifies this service to the upstream APIs, as the
	// Overpass usage policy requires.
	UserAgent string
	// RadiusMeters is the station search radius applied when a request
	// does not specify one.
	RadiusMeters float64
}

// New creates a Config with upstream defaults filled in.
func New(port int, env string) *Config {
	return &Config{
		Port:         port,
		Env:          env,
		OverpassURL:  overpass.DefaultBaseURL,
		OSRMURL:      osrm.DefaultBaseURL,
		UserAgent:    "fuelfinder/1.0 (+https://fuelfinder.app)",
		RadiusMeters: overpass.DefaultRadiusMeters,
	}
}
