package handlers

import (
	"roadtrip/internal/models"
	"roadtrip/internal/services"
	"roadtrip/internal/utils"

	"github.com/gin-gonic/gin"
)

type TripHandler struct {
	tripService *services.TripService
}

func NewTripHandler(tripService *services.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// CreateTrip creates a trip owned by the calling user.
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var request models.CreateTripRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), userID, &request)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Trip created", gin.H{"trip_id": trip.ID.Hex()})
}

// ListTrips lists the calling user's trips, newest first.
func (h *TripHandler) ListTrips(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	trips, err := h.tripService.ListTrips(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "", trips)
}

// GetTrip returns the full trip for its owner.
func (h *TripHandler) GetTrip(c *gin.Context) {
	tripID, err := tripIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	trip, err := h.tripService.GetTrip(c.Request.Context(), tripID, userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "", trip)
}

// Publish marks the trip published and publicly visible.
func (h *TripHandler) Publish(c *gin.Context) {
	tripID, err := tripIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.tripService.Publish(c.Request.Context(), tripID, userID); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Trip published", nil)
}

// Feed lists published public trips.
func (h *TripHandler) Feed(c *gin.Context) {
	trips, err := h.tripService.Feed(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "", trips)
}
