package attendance

import (
	"hrms/internal/middleware"
	"hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, gate gin.HandlerFunc) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware(), gate)
	{
		attendances.POST("/clock-in", h.ClockIn)
		attendances.POST("/clock-out", h.ClockOut)
		attendances.GET("/today", h.TodayStatus)
		attendances.GET("/me", h.GetMine)
		attendances.GET("", rbac.Authorize(rbacService, "attendance", "list"), h.GetAll)
	}
}
