package redis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"club-ads/internal/config/configs"
)

// NewClient creates a Redis client and verifies connectivity.
func NewClient(ctx context.Context, cfg configs.Redis, logger *slog.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	logger.Info("redis client connected", slog.String("addr", cfg.Addr))
	return rdb, nil
}
