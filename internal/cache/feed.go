package cache

import (
	"context"
	"fmt"
	"time"

	"quill/internal/middleware"

	"github.com/redis/go-redis/v9"
)

const (
	feedPageKeyFormat = "feed:page:%d"
	feedPageSetKey    = "feed:pages"
)

// DefaultFeedTTL is the documented default staleness bound for cached
// home-feed pages; the effective value comes from configuration.
const DefaultFeedTTL = 20 * time.Second

// FeedCache holds the rendered home-feed output, one entry per page number.
// The cached value is the final rendered page, shared by every viewer: the
// key deliberately excludes viewer identity. Entries live until the TTL
// passes or a new post invalidates the whole cache.
//
// The cache is constructed at process start and injected into whichever
// component reads or invalidates it. A nil Redis client disables caching
// entirely; every read then recomputes.
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeedCache returns a feed cache over the given client with the given
// entry TTL.
func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
	return &FeedCache{client: client, ttl: ttl}
}

func pageKey(page int) string {
	return fmt.Sprintf(feedPageKeyFormat, page)
}

// GetOrCompute returns the cached rendered output for the page, or invokes
// compute, stores the result with a fresh TTL and returns it. Storing is best
// effort: a Redis failure degrades to serving the computed value uncached.
func (f *FeedCache) GetOrCompute(ctx context.Context, page int, compute func() ([]byte, error)) ([]byte, error) {
	if f == nil || f.client == nil {
		return compute()
	}

	key := pageKey(page)
	cached, err := f.client.Get(ctx, key).Bytes()
	if err == nil {
		middleware.FeedCacheHits.Inc()
		return cached, nil
	}

	out, err := compute()
	if err != nil {
		return nil, err
	}
	middleware.FeedCacheMisses.Inc()

	// Track live page keys in a set so invalidation can drop them all in a
	// single DEL, which is atomic with respect to concurrent readers.
	pipe := f.client.Pipeline()
	pipe.Set(ctx, key, out, f.ttl)
	pipe.SAdd(ctx, feedPageSetKey, key)
	if _, storeErr := pipe.Exec(ctx); storeErr != nil {
		middleware.Logger.WarnContext(ctx, "feed cache store failed", "page", page, "error", storeErr.Error())
	}

	return out, nil
}

// InvalidateAll drops every cached feed page at once. A new post shifts the
// ordering on every page, so partial invalidation is never correct.
func (f *FeedCache) InvalidateAll(ctx context.Context) {
	if f == nil || f.client == nil {
		return
	}

	keys, err := f.client.SMembers(ctx, feedPageSetKey).Result()
	if err != nil {
		middleware.Logger.WarnContext(ctx, "feed cache invalidation failed", "error", err.Error())
		return
	}

	if err := f.client.Del(ctx, append(keys, feedPageSetKey)...).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "feed cache invalidation failed", "error", err.Error())
		return
	}
	middleware.FeedCacheInvalidations.Inc()
}
