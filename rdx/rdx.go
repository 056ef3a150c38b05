package rdx

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}

	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"), // empty if no password
		DB:       0,
	})
}

// GetJSON loads a cached value into dest and reports whether the key was
// present. A cache error counts as a miss; the caller falls through to the
// backing store either way.
func GetJSON(ctx context.Context, key string, dest any) bool {
	raw, err := Conn.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

// SetJSON caches a value under key with a TTL. Failures are logged and
// otherwise ignored; the cache is an optimization, not a source of truth.
func SetJSON(ctx context.Context, key string, val any, ttl time.Duration) {
	data, err := json.Marshal(val)
	if err != nil {
		log.Println("rdx: marshal error for key", key, ":", err)
		return
	}
	if err := Conn.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Println("rdx: set error for key", key, ":", err)
	}
}
