package cache

import (
	"context"
	"fmt"

	"codejam_core/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

// Connect opens the Redis client backing the points cache and verifies the
// connection with a ping.
func Connect(ctx context.Context) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("cache.Connect: %w", err)
	}

	return rdb, nil
}

func Close(rdb *redis.Client) {
	if rdb != nil {
		rdb.Close()
	}
}
