package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by operation name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// FeedCacheHits counts home-feed pages served straight from the cache.
	FeedCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quill_feed_cache_hits_total",
		Help: "Total number of home feed pages served from cache",
	})

	// FeedCacheMisses counts home-feed pages that had to be recomputed.
	FeedCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quill_feed_cache_misses_total",
		Help: "Total number of home feed pages recomputed on cache miss or expiry",
	})

	// FeedCacheInvalidations counts full-cache flushes triggered by post creation.
	FeedCacheInvalidations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quill_feed_cache_invalidations_total",
		Help: "Total number of explicit home feed cache invalidations",
	})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware registers the /metrics endpoint and returns the
// request-instrumentation handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
