package middleware

import (
	"net/http"
	"nupo-consult/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ContextUserIDValidated = "user_id_validated"

func ExtractUserID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, exists := ctx.Get(ContextUserID)
		if !exists {
			response.Error(ctx, http.StatusUnauthorized, "UNAUTHORIZED", "User is not authenticated", nil)
			ctx.Abort()
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			response.Error(ctx, http.StatusUnauthorized, "INVALID_USER_ID", "Invalid user_id format", nil)
			ctx.Abort()
			return
		}

		if _, err := uuid.Parse(userIDStr); err != nil {
			response.Error(ctx, http.StatusUnauthorized, "INVALID_USER_ID", "Invalid user_id format", nil)
			ctx.Abort()
			return
		}

		ctx.Set(ContextUserIDValidated, userIDStr)
		ctx.Next()
	}
}
