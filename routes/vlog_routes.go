package routes

import (
	"roadtrip/internal/handlers"
	"roadtrip/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupVlogRoutes sets up routes for vlog prompts, uploads and rendering
func SetupVlogRoutes(r *gin.RouterGroup, vlogHandler *handlers.VlogHandler, jwtSecret string) {
	vlog := r.Group("/vlog")
	{
		// Prompt lists are public; a token is accepted but not required
		vlog.GET("/prompts", middleware.OptionalAuth(jwtSecret), vlogHandler.Prompts)

		protected := vlog.Group("/:trip_id")
		protected.Use(middleware.AuthRequired(jwtSecret))
		{
			protected.POST("/upload", vlogHandler.Upload)
			protected.POST("/daily", vlogHandler.RenderDaily)
			protected.POST("/final", vlogHandler.RenderFinal)
		}
	}
}

// SetupVideoRoutes serves rendered videos straight off the router root so the
// returned /videos/... paths resolve without the API prefix.
func SetupVideoRoutes(r *gin.Engine, vlogHandler *handlers.VlogHandler) {
	r.GET("/videos/:trip_id/:filename", vlogHandler.ServeVideo)
}
