package routes

import (
	"roadtrip/internal/handlers"
	"roadtrip/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupGroupRoutes sets up routes for travel groups and group posts
func SetupGroupRoutes(r *gin.RouterGroup, groupHandler *handlers.GroupHandler, jwtSecret string) {
	groups := r.Group("/groups")
	{
		groups.GET("", middleware.OptionalAuth(jwtSecret), groupHandler.ListGroups)
		groups.GET("/:group_id/posts", middleware.OptionalAuth(jwtSecret), groupHandler.ListPosts)

		protected := groups.Group("")
		protected.Use(middleware.AuthRequired(jwtSecret))
		{
			protected.POST("", groupHandler.CreateGroup)
			protected.POST("/:group_id/posts", groupHandler.CreatePost)
		}
	}
}
