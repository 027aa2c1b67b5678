package models

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RedisClient backs the deal-page cache and the visitor preference store. It
// stays nil when redis is unreachable; both consumers degrade gracefully, so
// the storefront runs fine without it.
var RedisClient *redis.Client

func InitRedis() {
	opt, err := redisOptions()
	if err != nil {
		log.Println("Bad REDIS_URL, deal caching disabled:", err)
		return
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Println("Redis unreachable, deal caching disabled:", err)
		return
	}

	RedisClient = client
	log.Println("Redis connected: deal cache and preference store active")
}

func redisOptions() (*redis.Options, error) {
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		return redis.ParseURL(redisURL)
	}

	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}, nil
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
		RedisClient = nil
	}
}
