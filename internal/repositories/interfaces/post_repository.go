package interfaces

import (
	"context"

	"roadtrip/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	ListByGroup(ctx context.Context, groupID primitive.ObjectID) ([]*models.Post, error)
}
