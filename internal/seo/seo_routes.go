package seo

import (
	"nupo-consult/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(admin *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	settings := admin.Group("/seo")
	{
		settings.GET("", middleware.RBACAuthorize(rbacService, "seo", "read"), handler.List)
		settings.GET("/:id", middleware.RBACAuthorize(rbacService, "seo", "read"), handler.GetByID)
		settings.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "seo", "create"),
			handler.Create,
		)
		settings.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "seo", "update"),
			handler.Update,
		)
		settings.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "seo", "delete"),
			handler.Delete,
		)
	}
}
