// Package cache stores computed layouts and rendered artifacts.
//
// Three backends implement [Cache]:
//
//   - [NullCache] disables caching.
//   - [FileCache] keeps entries as JSON files under a directory (CLI default).
//   - [RedisCache] keeps entries in Redis with native expiry (server use).
//
// Keys come from a [Keyer]. The default keyer hashes the plan content together
// with every option that changes the output, so two requests share an entry
// only when they would produce byte-identical results.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
//
// Get reports a miss as (nil, false, nil); an error means the backend failed.
// A ttl of zero stores the entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// NullCache never stores anything.
type NullCache struct{}

// NewNullCache returns a cache that always misses.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Cache = NullCache{}
