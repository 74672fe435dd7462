package team

import (
	"nupo-consult/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(admin *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	team := admin.Group("/team")
	{
		team.GET("", middleware.RBACAuthorize(rbacService, "team", "read"), handler.List)
		team.GET("/:id", middleware.RBACAuthorize(rbacService, "team", "read"), handler.GetByID)
		team.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "team", "create"),
			handler.Create,
		)
		team.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "team", "update"),
			handler.Update,
		)
		team.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "team", "delete"),
			handler.Delete,
		)
		team.POST("/bulk/:action",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "team", "update"),
			handler.BulkAction,
		)
	}
}
