package dashboard

import (
	"nupo-consult/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(admin *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	admin.GET("/dashboard", middleware.RBACAuthorize(rbacService, "dashboard", "read"), handler.Stats)
}
