package cache

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/neuroscale/neuroscale-site/internal/logger"
)

// RedisStore backs the site cache with redis so invalidation survives
// restarts and multiple renderer replicas share one cache. Tag membership
// lives in a set per tag; invalidating a tag deletes its members and the set.
type RedisStore struct {
	log *logger.Logger
	rdb *goredis.Client
}

func NewRedisStore(log *logger.Logger) (*RedisStore, error) {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    os.Getenv("REDIS_PASSWORD"),
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{
		log: log.With("service", "RedisStore"),
		rdb: rdb,
	}, nil
}

func tagKey(tag string) string {
	return "cachetag:" + tag
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			r.log.Warn("Redis get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return val, true
}

func (r *RedisStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration, tags []string) {
	if err := r.rdb.Set(ctx, key, val, ttl).Err(); err != nil {
		r.log.Warn("Redis set failed", "key", key, "error", err)
		return
	}
	for _, tag := range tags {
		if err := r.rdb.SAdd(ctx, tagKey(tag), key).Err(); err != nil {
			r.log.Warn("Redis tag index update failed", "tag", tag, "error", err)
		}
	}
}

func (r *RedisStore) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		r.log.Warn("Redis invalidate failed", "keys", keys, "error", err)
	}
}

func (r *RedisStore) InvalidateTag(ctx context.Context, tag string) {
	members, err := r.rdb.SMembers(ctx, tagKey(tag)).Result()
	if err != nil {
		r.log.Warn("Redis tag members lookup failed", "tag", tag, "error", err)
		return
	}
	if len(members) > 0 {
		if err := r.rdb.Del(ctx, members...).Err(); err != nil {
			r.log.Warn("Redis tag invalidate failed", "tag", tag, "error", err)
		}
	}
	if err := r.rdb.Del(ctx, tagKey(tag)).Err(); err != nil {
		r.log.Warn("Redis tag index delete failed", "tag", tag, "error", err)
	}
}
