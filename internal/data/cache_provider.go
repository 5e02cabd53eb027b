package data

import (
	"context"
	"log/slog"
	"time"

	"river-watch/internal/config"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=cache_provider.go -destination=../mocks/cache.go -package=mocks

// CacheProvider is a keyed byte cache with per-entry TTL. Values are JSON
// documents produced by the telemetry service.
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Size(ctx context.Context) int
}

// NewCacheProvider returns a new CacheProvider
func NewCacheProvider(cfg *config.Config, logger *slog.Logger) (CacheProvider, error) {
	switch cfg.Cache.Type {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Address,
			Username:     cfg.Redis.Username,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.CacheIndex,
			MinIdleConns: 2,
		})

		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, err
		}

		return NewRedisCache(client, logger), nil
	case "memory":
		fallthrough
	default:
		return NewMemCache(), nil
	}
}
