// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"lablink/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CartCacheClient holds per-session carts.
	CartCacheClient *redis.Client
	// CheckoutCacheClient holds booking drafts, commit state and the fallback booking lists.
	CheckoutCacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
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
		log.Fatalf("Failed to connect to Redis (DB %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients up front.
func InitRedis() {
	CartCacheClient = newRedisClient(config.AppConfig.RedisCartDB)
	CheckoutCacheClient = newRedisClient(config.AppConfig.RedisCheckoutDB)
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
}

// GetCartCacheClient returns the cart cache client.
func GetCartCacheClient() *redis.Client {
	if CartCacheClient == nil {
		CartCacheClient = newRedisClient(config.AppConfig.RedisCartDB)
	}
	return CartCacheClient
}

// GetCheckoutCacheClient returns the checkout cache client.
func GetCheckoutCacheClient() *redis.Client {
	if CheckoutCacheClient == nil {
		CheckoutCacheClient = newRedisClient(config.AppConfig.RedisCheckoutDB)
	}
	return CheckoutCacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}
