package inquiry

import (
	"nupo-consult/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterPublicRoutes mounts POST /contact. The page itself is served by
// the site package.
func RegisterPublicRoutes(public *gin.RouterGroup, handler *Handler, rdb *redis.Client, limit gin.HandlerFunc) {
	public.POST("/contact",
		limit,
		middleware.Idempotency(rdb),
		handler.Submit,
	)
}

func RegisterRoutes(admin *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	inquiries := admin.Group("/inquiries")
	{
		inquiries.GET("", middleware.RBACAuthorize(rbacService, "inquiry", "read"), handler.List)
		inquiries.GET("/:id", middleware.RBACAuthorize(rbacService, "inquiry", "read"), handler.GetByID)
		inquiries.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "inquiry", "update"),
			handler.Update,
		)
		inquiries.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "inquiry", "delete"),
			handler.Delete,
		)
		inquiries.POST("/bulk/:action",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "inquiry", "update"),
			handler.BulkAction,
		)
	}
}
