package news

import (
	"nupo-consult/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(admin *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	articles := admin.Group("/news")
	{
		articles.GET("", middleware.RBACAuthorize(rbacService, "news", "read"), handler.List)
		articles.GET("/:id", middleware.RBACAuthorize(rbacService, "news", "read"), handler.GetByID)
		articles.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "news", "create"),
			handler.Create,
		)
		articles.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "news", "update"),
			handler.Update,
		)
		articles.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "news", "delete"),
			handler.Delete,
		)
		articles.POST("/bulk/:action",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "news", "update"),
			handler.BulkAction,
		)
	}
}
