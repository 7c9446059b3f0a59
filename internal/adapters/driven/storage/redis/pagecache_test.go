package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCache connects to the server named by TABULA_TEST_REDIS, skipping
// the test when it is unset.
func newTestCache(t *testing.T) *PageCache {
	t.Helper()

	addr := os.Getenv("TABULA_TEST_REDIS")
	if addr == "" {
		t.Skip("TABULA_TEST_REDIS not set")
	}

	c, err := NewPageCache(Options{Addr: addr, DB: 15})
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = c.Flush(context.Background())
		_ = c.Close()
	})
	return c
}

func TestPageCache_SetGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("payload"), time.Minute))

	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "payload", string(got))
}

func TestPageCache_Miss(t *testing.T) {
	c := newTestCache(t)

	got, ok, err := c.Get(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestPageCache_Flush(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), 0))

	n, err := c.Flush(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	_, ok, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewPageCache_Unreachable(t *testing.T) {
	_, err := NewPageCache(Options{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
