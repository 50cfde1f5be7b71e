// Package cache stores computed experiment entries so that seeded runs can be
// replayed without regenerating graphs.
//
// # Backends
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: one JSON file per key under a local directory (CLI default)
//   - [RedisCache]: shared cache backed by a Redis server
//
// # Keys
//
// Keys are produced by a [Keyer]. The default keyer hashes every input that
// influences an entry (n, k, beta, seed, generation mode and stream index),
// so a key never collides across parameter sets. [ScopedKeyer] adds a prefix
// for separate namespaces.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface used by the experiment runner.
//
// Get returns (nil, false, nil) on a miss. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// TTLs for cached data.
const (
	// TTLEntry is how long a generated graph and its metrics stay cached.
	// Entries are deterministic for a fixed seed, so this only bounds disk use.
	TTLEntry = 30 * 24 * time.Hour
)
