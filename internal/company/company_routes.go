package company

import (
	"nupo-consult/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(admin *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	company := admin.Group("/company")
	{
		company.GET("/profile", middleware.RBACAuthorize(rbacService, "company", "read"), handler.GetProfile)
		company.POST("/profile",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "company", "create"),
			handler.CreateProfile,
		)
		company.PUT("/profile",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "company", "update"),
			handler.UpdateProfile,
		)
		company.DELETE("/profile", middleware.RBACAuthorize(rbacService, "company", "delete"), handler.RejectDelete)

		company.GET("/stats", middleware.RBACAuthorize(rbacService, "company", "read"), handler.GetStats)
		company.POST("/stats",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "company", "create"),
			handler.CreateStats,
		)
		company.PUT("/stats",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "company", "update"),
			handler.UpdateStats,
		)
		company.DELETE("/stats", middleware.RBACAuthorize(rbacService, "company", "delete"), handler.RejectDelete)
	}
}
