package payroll

import (
	"hrms/internal/middleware"
	"hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, gate gin.HandlerFunc, rdb *redis.Client) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware(), gate)
	{
		payrolls.POST("", rbac.Authorize(rbacService, "payroll", "create"), middleware.Idempotency(rdb), h.Create)
		payrolls.GET("", rbac.Authorize(rbacService, "payroll", "read"), h.GetAll)
		payrolls.GET("/:id", rbac.Authorize(rbacService, "payroll", "read"), h.GetByID)
		payrolls.PATCH("/:id/items/:itemId", rbac.Authorize(rbacService, "payroll", "update_item"), h.UpdateItem)
		payrolls.POST("/:id/process", rbac.Authorize(rbacService, "payroll", "process"), middleware.Idempotency(rdb), h.Process)
	}
}
