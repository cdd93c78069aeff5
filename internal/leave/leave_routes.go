package leave

import (
	"hrms/internal/middleware"
	"hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, gate gin.HandlerFunc) {
	leaveTypes := r.Group("/leave-types")
	leaveTypes.Use(middleware.AuthMiddleware(), gate)
	{
		leaveTypes.POST("", rbac.Authorize(rbacService, "leave_type", "create"), h.CreateType)
		leaveTypes.GET("", h.GetActiveTypes)
		leaveTypes.PATCH("/:id", rbac.Authorize(rbacService, "leave_type", "update"), h.UpdateType)
	}

	leaveRequests := r.Group("/leave-requests")
	leaveRequests.Use(middleware.AuthMiddleware(), gate)
	{
		leaveRequests.POST("", h.CreateRequest)
		leaveRequests.GET("", rbac.Authorize(rbacService, "leave_request", "list"), h.GetAllRequests)
		leaveRequests.GET("/me", h.GetMyRequests)
		leaveRequests.PATCH("/:id/decide", rbac.Authorize(rbacService, "leave_request", "decide"), h.DecideRequest)
		leaveRequests.PATCH("/:id/cancel", h.CancelRequest)
	}
}
