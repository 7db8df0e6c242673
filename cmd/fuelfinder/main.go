package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"fuelfinder.app/internal/app"
	"fuelfinder.app/internal/config"
	"fuelfinder.app/internal/report"
)

const version = "1.0.0"

// main is the application composition root: it assembles config from flags
// and environment, wires the upstream clients behind the handlers, and
// starts the HTTP server.
func main() {
	var (
		port = flag.Int("port", 4000, "API server port")
		env  = flag.String("env", "development", "Environment (development|staging|production)")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (using environment variables)")
	}

	report.SetupSentry()
	defer report.FlushSentry()
	report.ConfigureScope(*env, version)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg := config.New(*port, *env)
	if v := os.Getenv("OVERPASS_URL"); v != "" {
		cfg.OverpassURL = v
	}
	if v := os.Getenv("OSRM_URL"); v != "" {
		cfg.OSRMURL = v
	}
	if v := os.Getenv("FUELFINDER_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}

	client := app.NewPooledClient()
	application := app.New(cfg, logger, client, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      application.Routes(ctx),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err := srv.ListenAndServe()
	report.ReportError(err, sentry.LevelFatal)
	report.FlushSentry()
	logger.Error(err.Error())
	os.Exit(1)
}
