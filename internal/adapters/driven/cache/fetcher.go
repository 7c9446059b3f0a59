// Package cache wraps a PageFetcher with a PageCache so repeated lookups of
// the same page are served locally and concurrent lookups share one request.
package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/custodia-labs/tabula/internal/core/domain"
	"github.com/custodia-labs/tabula/internal/core/ports/driven"
	"github.com/custodia-labs/tabula/internal/logger"
	"github.com/custodia-labs/tabula/internal/metrics"
)

// Ensure Fetcher implements the interface.
var _ driven.PageFetcher = (*Fetcher)(nil)

// Fetcher is a caching PageFetcher decorator. Only successful payloads are
// stored; cache failures are logged and fall through to the next fetcher.
type Fetcher struct {
	next    driven.PageFetcher
	store   driven.PageCache
	ttl     time.Duration
	metrics *metrics.Metrics
	group   singleflight.Group
}

// NewFetcher wraps next with store. A zero ttl keeps entries until the
// store evicts them. m may be nil.
func NewFetcher(next driven.PageFetcher, store driven.PageCache, ttl time.Duration, m *metrics.Metrics) *Fetcher {
	return &Fetcher{
		next:    next,
		store:   store,
		ttl:     ttl,
		metrics: m,
	}
}

// URLValidator is implemented by fetchers that can reject a link without
// a network call.
type URLValidator interface {
	ValidateURL(url string) error
}

// FetchTab returns the tab page payload, from cache when possible. Links
// the next fetcher rejects fail before the cache is consulted.
func (f *Fetcher) FetchTab(ctx context.Context, url string) ([]byte, error) {
	if v, ok := f.next.(URLValidator); ok {
		if err := v.ValidateURL(url); err != nil {
			return nil, err
		}
	}
	return f.getOrFetch(ctx, buildKey("tab", url), func() ([]byte, error) {
		return f.next.FetchTab(ctx, url)
	})
}

// FetchSearch returns the search page payload, from cache when possible.
func (f *Fetcher) FetchSearch(ctx context.Context, artist, song string) ([]byte, error) {
	key := buildKey("search", normalize(artist), normalize(song))
	return f.getOrFetch(ctx, key, func() ([]byte, error) {
		return f.next.FetchSearch(ctx, artist, song)
	})
}

// FetchExplore returns the explore page payload, from cache when possible.
func (f *Fetcher) FetchExplore(ctx context.Context, order domain.ExploreOrder) ([]byte, error) {
	return f.getOrFetch(ctx, buildKey("explore", string(order)), func() ([]byte, error) {
		return f.next.FetchExplore(ctx, order)
	})
}

// FetchArtist returns the artist page payload, from cache when possible.
func (f *Fetcher) FetchArtist(ctx context.Context, path string) ([]byte, error) {
	return f.getOrFetch(ctx, buildKey("artist", path), func() ([]byte, error) {
		return f.next.FetchArtist(ctx, path)
	})
}

func (f *Fetcher) getOrFetch(ctx context.Context, key string, fetch func() ([]byte, error)) ([]byte, error) {
	if payload, ok := f.lookup(ctx, key); ok {
		f.metrics.CacheHit()
		return payload, nil
	}

	val, err, shared := f.group.Do(key, func() (interface{}, error) {
		if payload, ok := f.lookup(ctx, key); ok {
			return payload, nil
		}
		f.metrics.CacheMiss()
		payload, err := fetch()
		if err != nil {
			return nil, err
		}
		if err := f.store.Set(ctx, key, payload, f.ttl); err != nil {
			logger.Warn("cache set failed for %s: %v", key, err)
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Debug("Shared in-flight fetch for %s", key)
	}
	return val.([]byte), nil
}

func (f *Fetcher) lookup(ctx context.Context, key string) ([]byte, bool) {
	payload, ok, err := f.store.Get(ctx, key)
	if err != nil {
		logger.Warn("cache get failed for %s: %v", key, err)
		return nil, false
	}
	if ok {
		logger.Debug("Cache hit for %s", key)
	}
	return payload, ok
}

func buildKey(kind string, parts ...string) string {
	raw := strings.Join(parts, "\x00")
	hash := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%s:%x", kind, hash[:16])
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
