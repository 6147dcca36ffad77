package cache

import (
	"context"
	"time"
)

// Store is a byte cache with tag-based invalidation on top of time-based
// expiry, whichever fires first. Rendered pages are stored under their path
// key and data aggregates under a fixed key; every entry carries the cache
// tags of the content types baked into it.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration, tags []string)
	Invalidate(ctx context.Context, keys ...string)
	InvalidateTag(ctx context.Context, tag string)
}

// PageKey maps a site path to its cache key.
func PageKey(path string) string {
	return "page:" + path
}

// HomeKey is the cache key of the landing-page aggregate.
const HomeKey = "cms:home"

// DocumentKey is the cache key of one legal document.
func DocumentKey(slug string) string {
	return "cms:doc:" + slug
}
