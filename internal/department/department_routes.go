package department

import (
	"hrms/internal/middleware"
	"hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, gate gin.HandlerFunc) {
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware(), gate)
	{
		departments.POST("", rbac.Authorize(rbacService, "department", "create"), h.Create)
		departments.GET("", h.GetAll)
		departments.GET("/:id", h.GetByID)
		departments.PATCH("/:id", rbac.Authorize(rbacService, "department", "update"), h.Update)
		departments.DELETE("/:id", rbac.Authorize(rbacService, "department", "delete"), h.Delete)
	}
}
