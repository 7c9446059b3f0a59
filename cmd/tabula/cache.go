package main

import (
	"context"
	"fmt"

	"github.com/custodia-labs/tabula/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tabula/internal/adapters/driven/storage/redis"
	"github.com/custodia-labs/tabula/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/tabula/internal/core/domain"
	"github.com/custodia-labs/tabula/internal/core/ports/driven"
	"github.com/custodia-labs/tabula/internal/logger"
)

// openCache opens the configured page cache. It returns nil for the none
// backend. An empty sqlite directory falls back to home.
func openCache(ctx context.Context, cfg domain.CacheSettings, home string) (driven.PageCache, error) {
	switch cfg.Backend {
	case domain.CacheBackendNone:
		return nil, nil

	case domain.CacheBackendMemory:
		return memory.NewPageCache(), nil

	case domain.CacheBackendSQLite:
		dir := cfg.SQLiteDir
		if dir == "" {
			dir = home
		}
		store, err := sqlite.NewStore(dir)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite cache: %w", err)
		}
		pruned, err := store.Prune(ctx)
		if err != nil {
			logger.Warn("pruning sqlite cache: %v", err)
		} else if pruned > 0 {
			logger.Debug("Pruned %d expired pages from %s", pruned, store.Path())
		}
		return store, nil

	case domain.CacheBackendRedis:
		pc, err := redis.NewPageCache(redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		if err != nil {
			return nil, fmt.Errorf("opening redis cache: %w", err)
		}
		return pc, nil

	default:
		return nil, fmt.Errorf("%w: unknown cache backend %q", domain.ErrInvalidArgument, cfg.Backend)
	}
}
