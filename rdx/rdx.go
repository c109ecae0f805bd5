package rdx

import (
	"errors"
	"log"
	"os"
	"time"

	"garments/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

var ErrUnavailable = errors.New("redis unavailable")

// Init connects to Redis. Cache is optional: callers degrade gracefully
// when Conn stays nil.
func Init() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: os.Getenv("REDIS_PASSWORD"), // Empty if no password
		DB:       0,                           // Default DB
	})

	if err := client.Ping(globals.Ctx).Err(); err != nil {
		log.Println("Redis unavailable, continuing without cache:", err)
		return
	}
	Conn = client
}

func RdxGet(key string) (string, error) {
	if Conn == nil {
		return "", ErrUnavailable
	}
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxSet(key, value string, ttl time.Duration) error {
	if Conn == nil {
		return ErrUnavailable
	}
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxDel(key string) error {
	if Conn == nil {
		return ErrUnavailable
	}
	return Conn.Del(globals.Ctx, key).Err()
}

func RdxHset(hash, field, value string) error {
	if Conn == nil {
		return ErrUnavailable
	}
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func RdxHdel(hash, field string) error {
	if Conn == nil {
		return ErrUnavailable
	}
	return Conn.HDel(globals.Ctx, hash, field).Err()
}
