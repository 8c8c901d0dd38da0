package rdx

import (
	"os"

	"kirana/globals"

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
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}

// Session-token cache helpers. Callers treat failures as soft: a dead
// Redis never blocks login or logout.

func RdxHset(hash, key, value string) error {
	return Conn.HSet(globals.Ctx, hash, key, value).Err()
}

func RdxHget(hash, key string) (string, error) {
	return Conn.HGet(globals.Ctx, hash, key).Result()
}

func RdxHdel(hash, key string) (int64, error) {
	return Conn.HDel(globals.Ctx, hash, key).Result()
}
