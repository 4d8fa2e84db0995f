// Package storage provides the key-value persistence port used by the
// day-baseline tracker, with in-memory, Redis and Postgres backends.
package storage

import "context"

// KV is a flat string key-value store. Get reports absence through its
// second return value rather than an error, so callers can distinguish
// "no record yet" from a backend failure.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
}
