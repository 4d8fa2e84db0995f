package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

// Postgres implements KV over a single kv_store table:
//
//	CREATE TABLE IF NOT EXISTS kv_store (
//	    key        TEXT PRIMARY KEY,
//	    value      TEXT NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type Postgres struct {
	db *sql.DB
}

// NewPostgres wraps an open *sql.DB. The caller owns the connection pool
// and its lifecycle.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("postgres: get %s: %w", key, err)
	}
	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value,
					  updated_at = NOW()
	`, key, value)
	if err != nil {
		return fmt.Errorf("postgres: set %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}
