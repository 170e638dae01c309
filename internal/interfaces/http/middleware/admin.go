package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"hive-match.backend/pkg/logger"
)

// AdminChecker resolves admin membership for a user id.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// RequireAdmin gates a route group on admin membership. With no
// authenticated user it denies immediately, without a lookup; otherwise it
// performs exactly one membership lookup. Any lookup failure denies — the
// check fails closed and never assumes authorization. No retry.
func RequireAdmin(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
			return
		}

		isAdmin, err := checker.IsAdmin(c.Request.Context(), userID)
		if err != nil {
			logger.Warn(c.Request.Context(), "admin check failed, denying",
				zap.String("user_id", userID.String()), zap.Error(err))
			isAdmin = false
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
			return
		}

		c.Next()
	}
}
