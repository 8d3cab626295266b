package handlers

import (
	"errors"
	"io"

	"roadtrip/internal/models"
	"roadtrip/internal/services"
	"roadtrip/internal/utils"

	"github.com/gin-gonic/gin"
)

type PlannerHandler struct {
	plannerService *services.PlannerService
}

func NewPlannerHandler(plannerService *services.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerService: plannerService}
}

// FetchRoute fetches driving directions and stores the route snapshot.
func (h *PlannerHandler) FetchRoute(c *gin.Context) {
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

	var request models.RouteRequest
	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	snapshot, err := h.plannerService.FetchRoute(c.Request.Context(), tripID, userID, &request)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "", snapshot)
}

// FetchPOIs queries points of interest around the trip's route.
func (h *PlannerHandler) FetchPOIs(c *gin.Context) {
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

	var request models.POIRequest
	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	pois, err := h.plannerService.FetchPOIs(c.Request.Context(), tripID, userID, request.Pad)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "", gin.H{"pois": pois})
}

// SaveItinerary persists the ordered stop list.
func (h *PlannerHandler) SaveItinerary(c *gin.Context) {
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

	var request models.ItineraryRequest
	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.plannerService.SaveItinerary(c.Request.Context(), tripID, userID, request.Itinerary); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Itinerary saved", nil)
}

// Estimate returns the itemized cost breakdown.
func (h *PlannerHandler) Estimate(c *gin.Context) {
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

	var request models.EstimateRequest
	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	breakdown, err := h.plannerService.Estimate(c.Request.Context(), tripID, userID, &request)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "", breakdown)
}

// Geocode resolves a place name to coordinates.
func (h *PlannerHandler) Geocode(c *gin.Context) {
	results, err := h.plannerService.Geocode(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "", gin.H{"results": results})
}
