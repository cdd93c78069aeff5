package subscription

import (
	"hrms/internal/rbac"
	"hrms/internal/shared/apperror"
	"hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Gate blocks tenant feature routes unless the organization holds a usable
// subscription. SUPER_ADMIN bypasses the gate entirely: platform operators
// have no organization of their own.
func Gate(service Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") == rbac.RoleSuperAdmin {
			c.Next()
			return
		}

		sub, err := service.CheckAccess(c.Request.Context(), c.GetString("organization_id"))
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
			c.Abort()
			return
		}

		c.Set("subscription_status", sub.Status)
		c.Next()
	}
}
