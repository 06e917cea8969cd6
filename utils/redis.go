package utils

import (
	"context"
	"log"
	"time"

	"gamelounge/config"

	"github.com/go-redis/redis/v8"
)

// LockClient is the Redis client dedicated to slot locking.
var LockClient *redis.Client

// InitRedis initializes the Redis client used for slot locks.
func InitRedis() {
	LockClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLockDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := LockClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (slot locks): %v", err)
	}
}

// GetLockClient returns the Redis client for slot locking.
func GetLockClient() *redis.Client {
	if LockClient == nil {
		InitRedis()
	}
	return LockClient
}
