package testimonial

import (
	"nupo-consult/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(admin *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	testimonials := admin.Group("/testimonials")
	{
		testimonials.GET("", middleware.RBACAuthorize(rbacService, "testimonial", "read"), handler.List)
		testimonials.GET("/:id", middleware.RBACAuthorize(rbacService, "testimonial", "read"), handler.GetByID)
		testimonials.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "testimonial", "create"),
			handler.Create,
		)
		testimonials.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "testimonial", "update"),
			handler.Update,
		)
		testimonials.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "testimonial", "delete"),
			handler.Delete,
		)
		testimonials.POST("/bulk/:action",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "testimonial", "update"),
			handler.BulkAction,
		)
	}
}
