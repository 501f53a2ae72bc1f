package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yatube_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// PageCacheHits counts page cache hits by cache key.
	PageCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yatube_page_cache_hits_total",
		Help: "Total number of page cache hits",
	}, []string{"key"})

	// PageCacheMisses counts page cache misses by cache key.
	PageCacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yatube_page_cache_misses_total",
		Help: "Total number of page cache misses",
	}, []string{"key"})

	// FollowWrites counts follow/unfollow outcomes for drift monitoring.
	FollowWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yatube_follow_writes_total",
		Help: "Total follow edge writes by operation and outcome",
	}, []string{"operation", "outcome"})
)

var (
	promOnce sync.Once
	promMW   *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus HTTP middleware for the given service
// name. The HTTP collectors register against the default registry, so the
// middleware is built once and shared across Server instances.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promMW = fiberprometheus.New(serviceName)
	})
	return promMW
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
