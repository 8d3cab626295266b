package services

import (
	"context"
	"strings"

	"roadtrip/internal/models"
	"roadtrip/internal/repositories/interfaces"
	"roadtrip/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TripService struct {
	trips interfaces.TripRepository
}

func NewTripService(trips interfaces.TripRepository) *TripService {
	return &TripService{trips: trips}
}

func (s *TripService) CreateTrip(ctx context.Context, userID primitive.ObjectID, req *models.CreateTripRequest) (*models.Trip, error) {
	if strings.TrimSpace(req.Start) == "" || strings.TrimSpace(req.Dest) == "" {
		return nil, utils.NewValidationError("start and dest required")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "My Trip"
	}

	trip := &models.Trip{
		UserID:      userID,
		Name:        name,
		Start:       req.Start,
		Dest:        req.Dest,
		StartLat:    req.StartLat,
		StartLon:    req.StartLon,
		DestLat:     req.DestLat,
		DestLon:     req.DestLon,
		Preferences: req.Preferences,
		Food:        req.Food,
		Itinerary:   []models.ItineraryItem{},
		Visibility:  models.VisibilityPrivate,
	}

	if err := s.trips.Create(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

func (s *TripService) GetTrip(ctx context.Context, tripID, userID primitive.ObjectID) (*models.Trip, error) {
	return s.trips.GetByOwner(ctx, tripID, userID)
}

func (s *TripService) ListTrips(ctx context.Context, userID primitive.ObjectID) ([]models.TripSummary, error) {
	trips, err := s.trips.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return summarize(trips), nil
}

func (s *TripService) Publish(ctx context.Context, tripID, userID primitive.ObjectID) error {
	return s.trips.Publish(ctx, tripID, userID)
}

// Feed lists the newest published public trips. It requires no authentication.
func (s *TripService) Feed(ctx context.Context) ([]models.TripSummary, error) {
	trips, err := s.trips.ListPublished(ctx, utils.FeedLimit)
	if err != nil {
		return nil, err
	}

	return summarize(trips), nil
}

func summarize(trips []*models.Trip) []models.TripSummary {
	summaries := make([]models.TripSummary, len(trips))
	for i, t := range trips {
		summaries[i] = t.Summary()
	}
	return summaries
}
