package app

import (
	"log/slog"
	"net/http"

	"fuelfinder.app/internal/config"
	"fuelfinder.app/internal/osrm"
	"fuelfinder.app/internal/overpass"
)

// Application wires the upstream clients behind the HTTP handlers. It is
// the orchestrator the fetcher contracts leave out of scope: it decides
// what to fetch, attaches routes to the stations they were computed for,
// and turns empty results into HTTP responses without ever crashing on
// them.
type Application struct {
	Config     *config.Config
	Stations   *overpass.Client
	Directions *osrm.Client
	Logger     *slog.Logger
	Version    string
}

// New creates and wires all dependencies for the Application. The same
// pooled HTTP client backs both upstream clients so connections are shared.
func New(cfg *config.Config, logger *slog.Logger, client *http.Client, version string) *Application {
	stations := overpass.NewClient(cfg.OverpassURL, cfg.UserAgent, client, logger)
	directions := osrm.NewClient(cfg.OSRMURL, client, logger)

	return &Application{
		Config:     cfg,
		Stations:   stations,
		Directions: directions,
		Logger:     logger,
		Version:    version,
	}
}
