package partner

import (
	"nupo-consult/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(admin *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	partners := admin.Group("/partners")
	{
		partners.GET("", middleware.RBACAuthorize(rbacService, "partner", "read"), handler.List)
		partners.GET("/:id", middleware.RBACAuthorize(rbacService, "partner", "read"), handler.GetByID)
		partners.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "partner", "create"),
			handler.Create,
		)
		partners.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "partner", "update"),
			handler.Update,
		)
		partners.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "partner", "delete"),
			handler.Delete,
		)
		partners.POST("/bulk/:action",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "partner", "update"),
			handler.BulkAction,
		)
	}
}
