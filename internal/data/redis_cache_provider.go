package data

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"river-watch/internal/metrics"

	"github.com/redis/go-redis/v9"
)

// RedisCacheClient is the subset of redis.Client the cache relies on.
type RedisCacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Keys(ctx context.Context, pattern string) *redis.StringSliceCmd
	Close() error
}

type RedisCache struct {
	client RedisCacheClient
	logger *slog.Logger
}

// NewRedisCache creates a new Redis-backed cache
func NewRedisCache(client RedisCacheClient, logger *slog.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		logger: logger,
	}
}

// key generates a namespaced Redis key
func (r *RedisCache) key(name string) string {
	return "cache:telemetry:" + name
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Error("error executing redis GET", "key", key, "error", err)
		}
		metrics.CacheMisses.WithLabelValues(metrics.CacheTypeRedis).Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(metrics.CacheTypeRedis).Inc()
	return value, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		r.logger.Error("error executing redis SET", "key", key, "error", err)
	}
}

func (r *RedisCache) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.Error("error executing redis DEL", "key", key, "error", err)
	}
}

func (r *RedisCache) Size(ctx context.Context) int {
	keys, err := r.client.Keys(ctx, r.key("*")).Result()
	if err != nil {
		r.logger.Error("error executing redis KEYS", "error", err)
		return 0
	}

	return len(keys)
}
