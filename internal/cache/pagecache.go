package cache

import (
	"context"
	"fmt"
	"time"

	"yatube/internal/middleware"

	"github.com/redis/go-redis/v9"
)

const pageKeyPrefix = "page:"

// IndexKey returns the cache key for a page of the index listing.
func IndexKey(page int) string {
	return fmt.Sprintf("%sindex:%d", pageKeyPrefix, page)
}

// PageCache memoizes rendered listing pages in Redis for a fixed TTL.
//
// A hit is served verbatim even when the underlying data has changed
// since it was stored; readers see at most TTL-stale content. Concurrent
// misses for the same key may each render and store, last writer wins.
// Rendering is a pure read, so the redundant work is tolerated instead of
// serialized.
//
// The cache is an explicit collaborator: construct it with NewPageCache
// and pass it to the server rather than reaching for process-global state.
// A nil client degrades to rendering on every call.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache returns a PageCache storing entries with the given TTL.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{client: client, ttl: ttl}
}

// TTL returns the configured expiry of cached pages.
func (pc *PageCache) TTL() time.Duration {
	return pc.ttl
}

// Get returns the cached rendering for key, if present and unexpired.
func (pc *PageCache) Get(ctx context.Context, key string) (string, bool) {
	if pc == nil || pc.client == nil {
		return "", false
	}
	s, err := pc.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	middleware.PageCacheHits.WithLabelValues(key).Inc()
	return s, true
}

// Set stores rendered output under key with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, key, rendered string) {
	if pc == nil || pc.client == nil {
		return
	}
	pc.client.Set(ctx, key, rendered, pc.ttl)
}

// CachedRender returns the cached rendering for key, or invokes render,
// stores its output, and returns it.
func (pc *PageCache) CachedRender(ctx context.Context, key string, render func() (string, error)) (string, error) {
	if out, ok := pc.Get(ctx, key); ok {
		return out, nil
	}
	middleware.PageCacheMisses.WithLabelValues(key).Inc()

	out, err := render()
	if err != nil {
		return "", err
	}
	pc.Set(ctx, key, out)
	return out, nil
}

// Clear evicts every page-cache entry immediately. It scans only keys
// under the page prefix so unrelated Redis data (rate-limit counters)
// survives. Used administratively and by tests, not by request handling.
func (pc *PageCache) Clear(ctx context.Context) error {
	if pc == nil || pc.client == nil {
		return nil
	}
	iter := pc.client.Scan(ctx, 0, pageKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := pc.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
