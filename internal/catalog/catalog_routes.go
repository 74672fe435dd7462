package catalog

import (
	"nupo-consult/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(admin *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	categories := admin.Group("/service-categories")
	{
		categories.GET("", middleware.RBACAuthorize(rbacService, "service_category", "read"), handler.ListCategories)
		categories.GET("/:id", middleware.RBACAuthorize(rbacService, "service_category", "read"), handler.GetCategory)
		categories.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "service_category", "create"),
			handler.CreateCategory,
		)
		categories.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "service_category", "update"),
			handler.UpdateCategory,
		)
		categories.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "service_category", "delete"),
			handler.DeleteCategory,
		)
	}

	services := admin.Group("/services")
	{
		services.GET("", middleware.RBACAuthorize(rbacService, "service", "read"), handler.ListServices)
		services.GET("/:id", middleware.RBACAuthorize(rbacService, "service", "read"), handler.GetService)
		services.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "service", "create"),
			handler.CreateService,
		)
		services.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "service", "update"),
			handler.UpdateService,
		)
		services.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "service", "delete"),
			handler.DeleteService,
		)
		services.POST("/bulk/:action",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "service", "update"),
			handler.BulkAction,
		)
	}
}
