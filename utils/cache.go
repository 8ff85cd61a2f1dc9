// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/yihao03/Aistronaut/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds per-conversation chat session state.
	SessionCacheClient *redis.Client
	// StateCacheClient holds small scalar state such as the current
	// conversation pointer per user.
	StateCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients.
func InitRedis() {
	SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
	StateCacheClient = newRedisClient(config.AppConfig.RedisStateDB)
}

// GetSessionCacheClient returns the Redis client for chat session state.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
	}
	return SessionCacheClient
}

// GetStateCacheClient returns the Redis client for scalar state keys.
func GetStateCacheClient() *redis.Client {
	if StateCacheClient == nil {
		StateCacheClient = newRedisClient(config.AppConfig.RedisStateDB)
	}
	return StateCacheClient
}
