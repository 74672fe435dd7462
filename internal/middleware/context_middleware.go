package middleware

import (
	"nupo-consult/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const HeaderRequestID = "X-Request-ID"

// RequestID assigns a request id for public routes that do not go through
// ContextLogger.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := resolveRequestID(c)

		ctx := contextutil.WithRequestID(c.Request.Context(), rid)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := resolveRequestID(c)
		uid := c.GetString(ContextUserIDValidated)
		role := c.GetString(ContextRole)

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", uid),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithUserID(ctx, uid)
		ctx = contextutil.WithRole(ctx, role)
		ctx = contextutil.WithLogger(ctx, reqLogger)

		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func resolveRequestID(c *gin.Context) string {
	if rid := c.GetString("request_id"); rid != "" {
		return rid
	}

	rid := c.GetHeader(HeaderRequestID)
	if rid == "" {
		rid = uuid.New().String()
	}

	c.Set("request_id", rid)
	c.Header(HeaderRequestID, rid)
	return rid
}
