package organization

import (
	"hrms/internal/middleware"
	"hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	organizations := r.Group("/organizations")
	organizations.Use(middleware.AuthMiddleware())
	{
		organizations.POST("", rbac.Authorize(rbacService, "organization", "create"), h.Create)
		organizations.GET("", rbac.Authorize(rbacService, "organization", "list"), h.GetAll)
		organizations.GET("/:id", rbac.Authorize(rbacService, "organization", "read"), h.GetByID)
		organizations.PATCH("/:id", rbac.Authorize(rbacService, "organization", "update"), h.Update)
		organizations.DELETE("/:id", rbac.Authorize(rbacService, "organization", "delete"), h.Delete)
		organizations.PATCH("/:id/toggle-active", rbac.Authorize(rbacService, "organization", "toggle_active"), h.ToggleActive)
	}
}
