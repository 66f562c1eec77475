package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures a RedisCache.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Backoff  Backoff
}

// RedisCache stores entries in Redis and relies on key expiry for TTLs.
type RedisCache struct {
	client  *redis.Client
	backoff Backoff
	closed  atomic.Bool
}

// NewRedisCache connects to Redis and verifies the connection with PING.
func NewRedisCache(ctx context.Context, opts RedisOptions) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", opts.Addr, err)
	}
	return NewRedisCacheFromClient(client, opts.Backoff), nil
}

// NewRedisCacheFromClient wraps an existing client. A zero Backoff uses
// DefaultBackoff.
func NewRedisCacheFromClient(client *redis.Client, b Backoff) *RedisCache {
	if b.Attempts == 0 {
		b = DefaultBackoff
	}
	return &RedisCache{client: client, backoff: b}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.closed.Load() {
		return nil, false, ErrClosed
	}
	var data []byte
	err := RetryWithBackoff(ctx, c.backoff, func() error {
		var err error
		data, err = c.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return err
		}
		return transient(err)
	})
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return data, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if c.closed.Load() {
		return ErrClosed
	}
	err := RetryWithBackoff(ctx, c.backoff, func() error {
		return transient(c.client.Set(ctx, key, data, ttl).Err())
	})
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if c.closed.Load() {
		return ErrClosed
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Clear deletes every key matching pattern (e.g. "floorplan:*") and returns
// how many were removed.
func (c *RedisCache) Clear(ctx context.Context, pattern string) (int, error) {
	if c.closed.Load() {
		return 0, ErrClosed
	}
	var cursor uint64
	n := 0
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return n, fmt.Errorf("redis scan: %w", err)
		}
		if len(keys) > 0 {
			deleted, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return n, fmt.Errorf("redis del: %w", err)
			}
			n += int(deleted)
		}
		if next == 0 {
			return n, nil
		}
		cursor = next
	}
}

func (c *RedisCache) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
