package newsletter

import (
	"net/http"

	"nupo-consult/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const subscribePath = "/newsletter/subscribe"

func RegisterPublicRoutes(public *gin.RouterGroup, handler *Handler, rdb *redis.Client, limit gin.HandlerFunc) {
	public.POST(subscribePath,
		limit,
		middleware.Idempotency(rdb),
		handler.Subscribe,
	)
	public.Match(
		[]string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete},
		subscribePath,
		handler.MethodNotAllowed,
	)
}

func RegisterRoutes(admin *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	subscribers := admin.Group("/newsletter")
	{
		subscribers.GET("", middleware.RBACAuthorize(rbacService, "newsletter", "read"), handler.List)
		subscribers.GET("/:id", middleware.RBACAuthorize(rbacService, "newsletter", "read"), handler.GetByID)
		subscribers.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "newsletter", "update"),
			handler.Update,
		)
		subscribers.POST("/bulk/:action",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "newsletter", "update"),
			handler.BulkAction,
		)
	}
}
