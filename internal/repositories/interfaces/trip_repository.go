package interfaces

import (
	"context"

	"roadtrip/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TripRepository interface {
	Create(ctx context.Context, trip *models.Trip) error

	// GetByOwner filters by both trip id and owner id so a foreign trip is
	// indistinguishable from a missing one.
	GetByOwner(ctx context.Context, id, userID primitive.ObjectID) (*models.Trip, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Trip, error)

	UpdateRoute(ctx context.Context, id, userID primitive.ObjectID, route *models.RouteSnapshot) error
	UpdateItinerary(ctx context.Context, id, userID primitive.ObjectID, items []models.ItineraryItem) error
	Publish(ctx context.Context, id, userID primitive.ObjectID) error

	ListPublished(ctx context.Context, limit int64) ([]*models.Trip, error)
}
