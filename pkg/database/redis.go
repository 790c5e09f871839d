package database

import (
	"context"
	"fmt"
	"time"

	"ogre-backend/internal/config"
	"ogre-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// NewRedisConnection 连接 Redis 并探活，执行就绪队列依赖它
func NewRedisConnection(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		logger.Error("NewRedisConnection Error: ", err, "host", cfg.Host, "port", cfg.Port)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("NewRedisConnection: ", "host", cfg.Host, "port", cfg.Port, "db", cfg.DB)
	return client, nil
}
