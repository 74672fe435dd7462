package rbac

import (
	"nupo-consult/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string, logger *zap.Logger) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware(jwtSecret))
	group.Use(middleware.ExtractUserID())
	group.Use(middleware.ContextLogger(logger))
	group.Use(middleware.RoleMiddleware(RoleAdmin))
	{
		group.POST("/enforce", middleware.RateLimitByUser(2, 10), handler.Enforce)
		group.POST("/reload", middleware.RateLimitByUser(0.1, 1), handler.Reload)
	}
}
