package employee

import (
	"hrms/internal/middleware"
	"hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, gate gin.HandlerFunc, rdb *redis.Client) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(), gate)
	{
		employees.POST("", rbac.Authorize(rbacService, "employee", "create"), middleware.Idempotency(rdb), h.Create)
		employees.GET("", h.GetAll)
		employees.GET("/:id", h.GetByID)
		employees.PATCH("/:id", rbac.Authorize(rbacService, "employee", "update"), h.Update)
		employees.DELETE("/:id", rbac.Authorize(rbacService, "employee", "delete"), h.Delete)
	}
}
