package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFeedCache(t *testing.T, ttl time.Duration) (*FeedCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewFeedCache(rdb, ttl), mr
}

func TestFeedCacheHitSkipsCompute(t *testing.T) {
	fc, _ := setupFeedCache(t, 20*time.Second)
	ctx := context.Background()

	calls := 0
	compute := func() ([]byte, error) {
		calls++
		return []byte(`{"page":1}`), nil
	}

	first, err := fc.GetOrCompute(ctx, 1, compute)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	second, err := fc.GetOrCompute(ctx, 1, compute)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "second read must come from cache")
	assert.Equal(t, first, second)
}

func TestFeedCacheEntriesArePerPage(t *testing.T) {
	fc, _ := setupFeedCache(t, 20*time.Second)
	ctx := context.Background()

	p1, err := fc.GetOrCompute(ctx, 1, func() ([]byte, error) { return []byte("one"), nil })
	require.NoError(t, err)
	p2, err := fc.GetOrCompute(ctx, 2, func() ([]byte, error) { return []byte("two"), nil })
	require.NoError(t, err)

	assert.Equal(t, []byte("one"), p1)
	assert.Equal(t, []byte("two"), p2)
}

func TestFeedCacheExpiryRecomputes(t *testing.T) {
	fc, mr := setupFeedCache(t, 20*time.Second)
	ctx := context.Background()

	calls := 0
	compute := func() ([]byte, error) {
		calls++
		return []byte("v"), nil
	}

	_, err := fc.GetOrCompute(ctx, 1, compute)
	require.NoError(t, err)

	mr.FastForward(21 * time.Second)

	_, err = fc.GetOrCompute(ctx, 1, compute)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "expired entry must be recomputed")
}

func TestFeedCacheInvalidateAllDropsEveryPage(t *testing.T) {
	fc, _ := setupFeedCache(t, time.Minute)
	ctx := context.Background()

	for page := 1; page <= 3; page++ {
		_, err := fc.GetOrCompute(ctx, page, func() ([]byte, error) { return []byte("old"), nil })
		require.NoError(t, err)
	}

	fc.InvalidateAll(ctx)

	for page := 1; page <= 3; page++ {
		out, err := fc.GetOrCompute(ctx, page, func() ([]byte, error) { return []byte("new"), nil })
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), out, "page %d must be recomputed after invalidation", page)
	}
}

func TestFeedCacheComputeErrorIsNotStored(t *testing.T) {
	fc, _ := setupFeedCache(t, time.Minute)
	ctx := context.Background()

	_, err := fc.GetOrCompute(ctx, 1, func() ([]byte, error) {
		return nil, errors.New("store unavailable")
	})
	assert.Error(t, err)

	out, err := fc.GetOrCompute(ctx, 1, func() ([]byte, error) { return []byte("ok"), nil })
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), out)
}

func TestFeedCacheNilClientComputesEveryTime(t *testing.T) {
	fc := NewFeedCache(nil, time.Minute)
	ctx := context.Background()

	calls := 0
	for i := 0; i < 3; i++ {
		out, err := fc.GetOrCompute(ctx, 1, func() ([]byte, error) {
			calls++
			return []byte("v"), nil
		})
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), out)
	}
	assert.Equal(t, 3, calls)

	// invalidation on a disabled cache is a no-op, not a panic
	fc.InvalidateAll(ctx)
}
