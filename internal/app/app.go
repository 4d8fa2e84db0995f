package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/vespulse/config"
	"github.com/guttosm/vespulse/internal/api"
	"github.com/guttosm/vespulse/internal/baseline"
	"github.com/guttosm/vespulse/internal/feed"
	"github.com/guttosm/vespulse/internal/service"
	"github.com/guttosm/vespulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, the market service driving the refresh
// loop, a cleanup function for graceful shutdown, and any error
// encountered during initialization.
//
// Responsibilities:
//   - Builds the baseline store for the configured backend (memory, redis
//     or postgres).
//   - Creates the feed client that polls the upstream marketplace.
//   - Wires the baseline tracker and market service on top of them.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., connections).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - service.MarketService: the market service (run its polling loop).
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp(ctx context.Context) (*gin.Engine, service.MarketService, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	store, storeCleanup, err := initStore(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	// Feed client polling the upstream P2P marketplace
	client := feed.NewClient(feed.Config{
		BaseURL:  cfg.Feed.BaseURL,
		Asset:    cfg.Feed.Asset,
		Fiat:     cfg.Feed.Fiat,
		Rows:     cfg.Feed.Rows,
		MaxPages: cfg.Feed.MaxPages,
		Timeout:  cfg.Feed.Timeout,
	})

	// Day-start baseline tracker backed by the configured store
	tracker := baseline.NewTracker(store)

	// Market service (snapshot cache, aggregation, simulation)
	svc := service.NewMarketService(client, tracker)

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler, cfg.Server.APIToken)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(func() error {
		return store.Ping(context.Background())
	}, svc.Ready)
	healthHandler.Register(router)

	return router, svc, storeCleanup, nil
}

// initStore builds the baseline KV store for the configured backend.
//
// The returned cleanup function closes whatever connection the backend
// holds; for the in-memory store it is a no-op.
func initStore(ctx context.Context, cfg config.Config) (storage.KV, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreRedis:
		rdb, err := storage.NewRedis(ctx, storage.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		return rdb, func() { _ = rdb.Close() }, nil

	case config.StorePostgres:
		// indirection for unit testing
		db, err := postgresOpener(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		return storage.NewPostgres(db), func() { _ = db.Close() }, nil

	default:
		return storage.NewMemory(), func() {}, nil
	}
}
