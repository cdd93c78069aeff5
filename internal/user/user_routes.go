package user

import (
	"hrms/internal/middleware"
	"hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.POST("", rbac.Authorize(rbacService, "user", "create"), h.Create)
		users.GET("", rbac.Authorize(rbacService, "user", "list"), h.GetAll)
		users.GET("/:id", rbac.Authorize(rbacService, "user", "read"), h.GetByID)
		users.PATCH("/:id", rbac.Authorize(rbacService, "user", "update"), h.Update)
		users.DELETE("/:id", rbac.Authorize(rbacService, "user", "delete"), h.Delete)
		users.PATCH("/:id/toggle-active", rbac.Authorize(rbacService, "user", "toggle_active"), h.ToggleActive)
	}
}
