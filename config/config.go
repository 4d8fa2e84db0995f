package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Store backends selectable via STORE_BACKEND.
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of
// the system: the HTTP server, the upstream P2P feed, the refresh loop and
// the baseline store backends.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	API_TOKEN=changeme
//	FEED_BASE_URL=https://p2p.binance.com
//	FEED_ASSET=USDT
//	FEED_FIAT=VES
//	REFRESH_INTERVAL_SECONDS=30
//	STORE_BACKEND=memory
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Feed     FeedConfig     // Upstream P2P feed settings
	Refresh  RefreshConfig  // Polling loop settings
	Store    StoreConfig    // Baseline store backend selection
	Redis    RedisConfig    // Redis connection settings (STORE_BACKEND=redis)
	Postgres PostgresConfig // PostgreSQL connection settings (STORE_BACKEND=postgres)
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     string // The TCP port the HTTP server will listen on (e.g., "8080")
	APIToken string // Shared secret gating /api/v1; empty disables the gate
}

// FeedConfig defines the upstream marketplace endpoint and paging behavior.
type FeedConfig struct {
	BaseURL  string        // Marketplace origin (scheme + host)
	Asset    string        // Traded asset, fixed to USDT in practice
	Fiat     string        // Counter currency, fixed to VES in practice
	Rows     int           // Ads requested per page
	MaxPages int           // Upper bound on pages fetched per side
	Timeout  time.Duration // Per-request HTTP timeout
}

// RefreshConfig controls the polling loop.
type RefreshConfig struct {
	Interval time.Duration // Time between snapshot polls
}

// StoreConfig selects the baseline store backend.
type StoreConfig struct {
	Backend string // "memory", "redis" or "postgres"
}

// RedisConfig defines connection details for the Redis backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// PostgresConfig defines connection details for the PostgreSQL backend.
//
// URL is the computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the
// application. All services should import this package and read from
// AppConfig instead of reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate
//     the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("API_TOKEN", "")

	viper.SetDefault("FEED_BASE_URL", "https://p2p.binance.com")
	viper.SetDefault("FEED_ASSET", "USDT")
	viper.SetDefault("FEED_FIAT", "VES")
	viper.SetDefault("FEED_ROWS", 20)
	viper.SetDefault("FEED_MAX_PAGES", 50)
	viper.SetDefault("FEED_TIMEOUT_SECONDS", 15)

	viper.SetDefault("REFRESH_INTERVAL_SECONDS", 30)

	viper.SetDefault("STORE_BACKEND", StoreMemory)

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "vespulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port:     viper.GetString("SERVER_PORT"),
			APIToken: viper.GetString("API_TOKEN"),
		},
		Feed: FeedConfig{
			BaseURL:  viper.GetString("FEED_BASE_URL"),
			Asset:    viper.GetString("FEED_ASSET"),
			Fiat:     viper.GetString("FEED_FIAT"),
			Rows:     viper.GetInt("FEED_ROWS"),
			MaxPages: viper.GetInt("FEED_MAX_PAGES"),
			Timeout:  time.Duration(viper.GetInt("FEED_TIMEOUT_SECONDS")) * time.Second,
		},
		Refresh: RefreshConfig{
			Interval: time.Duration(viper.GetInt("REFRESH_INTERVAL_SECONDS")) * time.Second,
		},
		Store: StoreConfig{
			Backend: viper.GetString("STORE_BACKEND"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing or inconsistent.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Feed.BaseURL == "" {
		missing = append(missing, "FEED_BASE_URL")
	}
	if AppConfig.Feed.Asset == "" {
		missing = append(missing, "FEED_ASSET")
	}
	if AppConfig.Feed.Fiat == "" {
		missing = append(missing, "FEED_FIAT")
	}
	if AppConfig.Refresh.Interval <= 0 {
		missing = append(missing, "REFRESH_INTERVAL_SECONDS")
	}

	switch AppConfig.Store.Backend {
	case StoreMemory:
	case StoreRedis:
		if AppConfig.Redis.Addr == "" {
			missing = append(missing, "REDIS_ADDR")
		}
	case StorePostgres:
		if AppConfig.Postgres.Host == "" {
			missing = append(missing, "POSTGRES_HOST")
		}
		if AppConfig.Postgres.Port == 0 {
			missing = append(missing, "POSTGRES_PORT")
		}
		if AppConfig.Postgres.User == "" {
			missing = append(missing, "POSTGRES_USER")
		}
		if AppConfig.Postgres.DBName == "" {
			missing = append(missing, "POSTGRES_DB")
		}
	default:
		log.Fatalf("invalid STORE_BACKEND %q: must be memory, redis or postgres\n", AppConfig.Store.Backend)
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
