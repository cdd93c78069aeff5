package subscription

import (
	"hrms/internal/middleware"
	"hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	subscriptions := r.Group("/subscriptions")
	subscriptions.Use(middleware.AuthMiddleware())
	{
		subscriptions.POST("", rbac.Authorize(rbacService, "subscription", "create"), h.Subscribe)
		subscriptions.GET("", rbac.Authorize(rbacService, "subscription", "list"), h.GetAll)
		subscriptions.GET("/current", rbac.Authorize(rbacService, "subscription", "read"), h.Current)
		subscriptions.PATCH("/change-plan/:planId", rbac.Authorize(rbacService, "subscription", "change_plan"), h.ChangePlan)
		subscriptions.PATCH("/cancel", rbac.Authorize(rbacService, "subscription", "cancel"), h.Cancel)
		subscriptions.PATCH("/:id", rbac.Authorize(rbacService, "subscription", "update"), h.Update)
	}
}
