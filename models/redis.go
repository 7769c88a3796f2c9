package models

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

func InitRedis() {
	redisURL := os.Getenv("REDIS_URL")

	var opt *redis.Options
	if redisURL != "" {
		parsedOpt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running without cache")
			return
		}
		opt = parsedOpt
	} else {
		opt = &redis.Options{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		}
	}

	RedisClient = redis.NewClient(opt)

	_, err := RedisClient.Ping(context.Background()).Result()
	if err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without cache")
		RedisClient = nil
		return
	}

	log.Println("Redis connected")
}

// CacheGet returns the cached value for key, or "" when the cache is
// disabled or the key is missing.
func CacheGet(ctx context.Context, key string) string {
	if RedisClient == nil {
		return ""
	}
	val, err := RedisClient.Get(ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

func CacheSet(ctx context.Context, key, value string, ttl time.Duration) {
	if RedisClient == nil {
		return
	}
	_ = RedisClient.Set(ctx, key, value, ttl).Err()
}

func CacheDel(ctx context.Context, keys ...string) {
	if RedisClient == nil || len(keys) == 0 {
		return
	}
	_ = RedisClient.Del(ctx, keys...).Err()
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
