package driven

import (
	"context"
	"time"
)

// PageCache stores fetched payloads by key.
type PageCache interface {
	// Get returns the payload stored under key. The boolean is false
	// when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores payload under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Close releases resources.
	Close() error
}
