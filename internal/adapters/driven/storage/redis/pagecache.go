// Package redis provides a page cache on top of go-redis/v9, for setups where
// several tabula processes (for example MCP servers) share fetched pages.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/custodia-labs/tabula/internal/core/ports/driven"
)

// KeyPrefix namespaces every key written by the cache.
const KeyPrefix = "tabula:page:"

// Ensure PageCache implements the interface.
var _ driven.PageCache = (*PageCache)(nil)

// Options configures the redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

// PageCache stores payloads as plain redis strings.
type PageCache struct {
	rdb *redis.Client
}

// NewPageCache connects to redis and verifies the connection with a PING.
func NewPageCache(opts Options) (*PageCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
		PoolSize: opts.PoolSize,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &PageCache{rdb: rdb}, nil
}

// Get returns the payload stored under key.
func (c *PageCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.rdb.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, true, nil
}

// Set stores payload under key. A zero ttl keeps the key until evicted.
func (c *PageCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := c.rdb.Set(ctx, KeyPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Flush deletes every key under KeyPrefix and returns how many were removed.
func (c *PageCache) Flush(ctx context.Context) (int64, error) {
	var deleted int64
	iter := c.rdb.Scan(ctx, 0, KeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return deleted, fmt.Errorf("deleting key %s: %w", iter.Val(), err)
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("scanning %s: %w", KeyPrefix, err)
	}
	return deleted, nil
}

// Close closes the underlying connection pool.
func (c *PageCache) Close() error {
	return c.rdb.Close()
}
