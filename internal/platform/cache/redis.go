package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient returns nil when Redis is unreachable; callers then run
// without the calendar cache.
func NewRedisClient(ctx context.Context, cfg Config, log *slog.Logger) *redis.Client {
	log.Info("connecting to redis", "addr", cfg.Addr)

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("redis unavailable, calendar cache disabled", "addr", cfg.Addr, "error", err)
		_ = client.Close()
		return nil
	}

	log.Info("redis connected")
	return client
}
