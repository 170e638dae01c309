package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// likeCountTTL bounds staleness of the cached "liked you" counter.
const likeCountTTL = time.Hour

// ErrCacheMiss is returned when no cached count exists.
var ErrCacheMiss = errors.New("cache miss")

func likeCountKey(userID string) string {
	return fmt.Sprintf("likes:count:%s", userID)
}

// GetLikeCount returns the cached liked-you count for a user.
func GetLikeCount(ctx context.Context, userID string) (int64, error) {
	val, err := client.Get(ctx, likeCountKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrCacheMiss
	}
	if err != nil {
		return 0, err
	}
	// Refresh TTL on access.
	_ = client.Expire(ctx, likeCountKey(userID), likeCountTTL).Err()
	return strconv.ParseInt(val, 10, 64)
}

// SetLikeCount caches the liked-you count for a user.
func SetLikeCount(ctx context.Context, userID string, count int64) error {
	return client.Set(ctx, likeCountKey(userID), count, likeCountTTL).Err()
}

// InvalidateLikeCount drops the cached count after a new decision.
func InvalidateLikeCount(ctx context.Context, userID string) error {
	return client.Del(ctx, likeCountKey(userID)).Err()
}
