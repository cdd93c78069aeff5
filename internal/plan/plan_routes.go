package plan

import (
	"hrms/internal/middleware"
	"hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	plans := r.Group("/plans")

	// Public catalog view used by the signup flow.
	plans.GET("/active", h.GetAllActive)

	authed := plans.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("", rbac.Authorize(rbacService, "plan", "create"), h.Create)
		authed.GET("", rbac.Authorize(rbacService, "plan", "list"), h.GetAll)
		authed.GET("/:id", h.GetByID)
		authed.PATCH("/:id", rbac.Authorize(rbacService, "plan", "update"), h.Update)
		authed.DELETE("/:id", rbac.Authorize(rbacService, "plan", "delete"), h.Remove)
	}
}
