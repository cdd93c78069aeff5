package auth

import (
	"time"

	"hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")

	// Credential endpoints are brute-force targets; throttle per client IP.
	limited := middleware.RateLimitByIP(rate.Every(time.Second), 5)

	authGroup.POST("/register", limited, h.Register)
	authGroup.POST("/register-organization", limited, h.RegisterOrganization)
	authGroup.POST("/login", limited, h.Login)
	authGroup.POST("/refresh", limited, h.Refresh)

	authed := authGroup.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/logout", h.Logout)
		authed.GET("/me", h.Me)
	}
}
