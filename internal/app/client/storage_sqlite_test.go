package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *SQLiteCache {
	t.Helper()
	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "offline.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestSQLiteCache_SaveLoad(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	_, err := cache.Load(ctx, 1, CacheLostFound)
	assert.ErrorIs(t, err, ErrNotCached)

	require.NoError(t, cache.Save(ctx, 1, CacheLostFound, []byte(`{"items":[]}`)))
	require.NoError(t, cache.Save(ctx, 1, CacheLostFound, []byte(`{"items":[1]}`)))
	require.NoError(t, cache.Save(ctx, 2, CacheLostFound, []byte(`{"items":[2]}`)))

	entry, err := cache.Load(ctx, 1, CacheLostFound)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[1]}`, string(entry.Payload))
	assert.False(t, entry.UpdatedAt.IsZero())

	entry, err = cache.Load(ctx, 2, CacheLostFound)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[2]}`, string(entry.Payload))
}

func TestSQLiteCache_Clear(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	require.NoError(t, cache.Save(ctx, 1, CacheAlerts, []byte(`{}`)))
	require.NoError(t, cache.Save(ctx, 2, CacheAlerts, []byte(`{}`)))
	require.NoError(t, cache.Clear(ctx, 1))

	_, err := cache.Load(ctx, 1, CacheAlerts)
	assert.ErrorIs(t, err, ErrNotCached)
	_, err = cache.Load(ctx, 2, CacheAlerts)
	assert.NoError(t, err)
}
