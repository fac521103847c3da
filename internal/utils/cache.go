package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // Error inspection
	"strconv"       // Key formatting
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// CacheTTL is the lifetime of cached read responses
const CacheTTL = 60 * time.Second

// GenerationKey holds the counter that versions every balance-bearing key
const GenerationKey = "cache:generation"

// AdminUsersKey returns the cache key for the admin user listing
func AdminUsersKey(gen int64) string {
	return "admin:users:g" + strconv.FormatInt(gen, 10)
}

// UserInfoKey returns the cache key for one user's info response
func UserInfoKey(userID uint, gen int64) string {
	return "user:info:" + strconv.FormatUint(uint64(userID), 10) + ":g" + strconv.FormatInt(gen, 10)
}

// CacheGeneration returns the current generation. Readers must fetch it
// before loading from the database, so a write racing with them bumps the
// generation and their late SetCache lands on a key nobody reads again.
func CacheGeneration(ctx context.Context, rdb *redis.Client) (int64, error) {
	if rdb == nil {
		return 0, nil
	}
	gen, err := rdb.Get(ctx, GenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil // Nothing written yet
	}
	return gen, err
}

// BumpCacheGeneration retires every key built from the previous generation
// and returns that previous generation
func BumpCacheGeneration(ctx context.Context, rdb *redis.Client) (int64, error) {
	if rdb == nil {
		return 0, nil
	}
	gen, err := rdb.Incr(ctx, GenerationKey).Result()
	if err != nil {
		return 0, err
	}
	return gen - 1, nil
}

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	if rdb == nil {
		return false, nil // Caching disabled
	}
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	if rdb == nil {
		return nil
	}
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// DeleteCache deletes keys from Redis
func DeleteCache(ctx context.Context, rdb *redis.Client, keys ...string) error {
	if rdb == nil || len(keys) == 0 {
		return nil
	}
	return rdb.Del(ctx, keys...).Err() // Delete keys from Redis
}
