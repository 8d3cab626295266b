package mongodb

import (
	"context"
	"fmt"
	"time"

	"roadtrip/internal/models"
	"roadtrip/internal/repositories/interfaces"
	"roadtrip/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type tripRepository struct {
	collection *mongo.Collection
}

func NewTripRepository(db *mongo.Database) interfaces.TripRepository {
	return &tripRepository{
		collection: db.Collection("trips"),
	}
}

func (r *tripRepository) Create(ctx context.Context, trip *models.Trip) error {
	trip.ID = primitive.NewObjectID()
	trip.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, trip)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}

	return nil
}

func (r *tripRepository) GetByOwner(ctx context.Context, id, userID primitive.ObjectID) (*models.Trip, error) {
	var trip models.Trip
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&trip)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &utils.NotFoundError{Resource: "trip"}
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return &trip, nil
}

func (r *tripRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Trip, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer cursor.Close(ctx)

	var trips []*models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode trips: %w", err)
	}

	return trips, nil
}

func (r *tripRepository) UpdateRoute(ctx context.Context, id, userID primitive.ObjectID, route *models.RouteSnapshot) error {
	return r.updateOwned(ctx, id, userID, bson.M{"route": route})
}

func (r *tripRepository) UpdateItinerary(ctx context.Context, id, userID primitive.ObjectID, items []models.ItineraryItem) error {
	return r.updateOwned(ctx, id, userID, bson.M{"itinerary": items})
}

func (r *tripRepository) Publish(ctx context.Context, id, userID primitive.ObjectID) error {
	return r.updateOwned(ctx, id, userID, bson.M{
		"published":  true,
		"visibility": models.VisibilityPublic,
	})
}

func (r *tripRepository) updateOwned(ctx context.Context, id, userID primitive.ObjectID, updates bson.M) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	if result.MatchedCount == 0 {
		return &utils.NotFoundError{Resource: "trip"}
	}

	return nil
}

func (r *tripRepository) ListPublished(ctx context.Context, limit int64) ([]*models.Trip, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{
		"published":  true,
		"visibility": models.VisibilityPublic,
	}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list published trips: %w", err)
	}
	defer cursor.Close(ctx)

	var trips []*models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode trips: %w", err)
	}

	return trips, nil
}
