package routes

import (
	"roadtrip/internal/handlers"
	"roadtrip/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupTripRoutes sets up routes for trip planning
func SetupTripRoutes(r *gin.RouterGroup, tripHandler *handlers.TripHandler, plannerHandler *handlers.PlannerHandler, jwtSecret string) {
	// Feed is public; a token is accepted but not required
	r.GET("/feed", middleware.OptionalAuth(jwtSecret), tripHandler.Feed)
	r.GET("/geocode", middleware.AuthRequired(jwtSecret), plannerHandler.Geocode)

	// Protected trip routes (require authentication)
	trips := r.Group("/trips")
	trips.Use(middleware.AuthRequired(jwtSecret))
	{
		trips.POST("", tripHandler.CreateTrip)
		trips.GET("", tripHandler.ListTrips)
		trips.GET("/:id", tripHandler.GetTrip)
		trips.POST("/:id/publish", tripHandler.Publish)

		// Planning operations
		trips.POST("/:id/route", plannerHandler.FetchRoute)
		trips.POST("/:id/pois", plannerHandler.FetchPOIs)
		trips.POST("/:id/itinerary", plannerHandler.SaveItinerary)
		trips.POST("/:id/estimate", plannerHandler.Estimate)
	}
}
