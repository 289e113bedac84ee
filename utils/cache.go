// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"auditveda/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient is the dedicated client for wizard session storage.
	SessionCacheClient *redis.Client
	// VerificationCacheClient is the dedicated client for verification reference caching.
	VerificationCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client for wizard session storage.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for wizard session storage.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitVerificationCache initializes the Redis client for verification reference caching.
func InitVerificationCache() {
	VerificationCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisVerificationDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := VerificationCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Verification Cache): %v", err)
	}
}

// GetVerificationCacheClient returns the Redis client for verification reference caching.
func GetVerificationCacheClient() *redis.Client {
	if VerificationCacheClient == nil {
		InitVerificationCache()
	}
	return VerificationCacheClient
}
