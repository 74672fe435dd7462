package project

import (
	"nupo-consult/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(admin *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	projects := admin.Group("/projects")
	{
		projects.GET("", middleware.RBACAuthorize(rbacService, "project", "read"), handler.List)
		projects.GET("/:id", middleware.RBACAuthorize(rbacService, "project", "read"), handler.GetByID)
		projects.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "project", "create"),
			handler.Create,
		)
		projects.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "project", "update"),
			handler.Update,
		)
		projects.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "project", "delete"),
			handler.Delete,
		)
		projects.POST("/bulk/:action",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "project", "update"),
			handler.BulkAction,
		)
	}
}
