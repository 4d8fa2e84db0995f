package main

//
//  @title           vespulse API
//  @version         1.0
//  @description     P2P USDT/VES market aggregation & simulation service.
//  @termsOfService  https://github.com/guttosm/vespulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/vespulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @securityDefinitions.apikey ApiKeyAuth
//  @in              header
//  @name            X-API-Key
//
//  @tag.name        market
//  @tag.description Endpoints for querying the aggregated P2P market
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/vespulse/config"
	_ "github.com/guttosm/vespulse/docs" // swagger docs
	"github.com/guttosm/vespulse/internal/app"
	"github.com/guttosm/vespulse/internal/feed"
	"github.com/guttosm/vespulse/internal/logger"
	"github.com/guttosm/vespulse/internal/market"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cancelPoll (func()): Stops the background refresh loop.
//   - cleanup (func()): Cleanup callback to release resources (e.g., store connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cancelPoll func(), cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	cancelPoll()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runFetch performs a single snapshot fetch and prints the aggregated
// overview as JSON to stdout. Useful for cron jobs and smoke tests.
func runFetch(ctx context.Context) error {
	cfg := config.AppConfig

	client := feed.NewClient(feed.Config{
		BaseURL:  cfg.Feed.BaseURL,
		Asset:    cfg.Feed.Asset,
		Fiat:     cfg.Feed.Fiat,
		Rows:     cfg.Feed.Rows,
		MaxPages: cfg.Feed.MaxPages,
		Timeout:  cfg.Feed.Timeout,
	})

	snap, err := client.FetchSnapshot(ctx)
	if err != nil {
		return err
	}

	overview := market.Overview(*snap)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(overview)
}

// main is the entry point of the vespulse application.
//
// Modes (selected via --mode flag):
//   - api:   Starts the REST API and the background refresh loop.
//   - fetch: Fetches one snapshot, prints the market overview, and exits.
//
// Flags:
//   - --mode: Execution mode ("api" or "fetch"). Default: "api".
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or fetch")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "fetch":
		// One-shot mode: fetch a snapshot and print the overview
		logger.L().Info().Msg("fetching market snapshot")
		if err := runFetch(ctx); err != nil {
			logger.L().Fatal().Err(err).Msg("fetch failed")
		}

	case "api":
		// API mode: start the HTTP server and the refresh loop
		logger.L().Info().Msg("starting API server")

		router, svc, cleanup, err := app.InitializeApp(ctx)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		pollCtx, cancelPoll := context.WithCancel(ctx)
		go svc.Run(pollCtx, config.AppConfig.Refresh.Interval)

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cancelPoll, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
