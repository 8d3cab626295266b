package routes

import (
	"roadtrip/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up routes for registration and login
func SetupAuthRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}
}
