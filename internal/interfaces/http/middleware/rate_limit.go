package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"hive-match.backend/pkg/logger"
	"hive-match.backend/pkg/redis"
)

var (
	redisIncr   = redis.Incr
	redisExpire = redis.Expire
)

// RateLimitMiddleware applies a fixed-window counter per caller in Redis.
// It runs behind the auth middleware, so the key is the authenticated user
// id; the client IP is the fallback for unauthenticated paths. A Redis
// outage does not take the endpoint down: over-admission is preferred to an
// outage here because the guarded handler still enforces authorization
// itself.
func RateLimitMiddleware(name string, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		secs := int64(window.Seconds())
		if secs < 1 {
			secs = 1
		}
		windowStart := time.Now().Unix() / secs

		caller := c.ClientIP()
		if userID, ok := GetUserID(c); ok {
			caller = userID.String()
		}
		key := fmt.Sprintf("ratelimit:%s:%s:%d", name, caller, windowStart)

		ctx := c.Request.Context()
		count, err := redisIncr(ctx, key)
		if err != nil {
			logger.Warn(ctx, "rate limiter unavailable", zap.String("limiter", name), zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			_ = redisExpire(ctx, key, window)
		}

		if count > limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}

		c.Next()
	}
}
