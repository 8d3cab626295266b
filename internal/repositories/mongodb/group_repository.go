package mongodb

import (
	"context"
	"fmt"
	"time"

	"roadtrip/internal/models"
	"roadtrip/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type groupRepository struct {
	groups  *mongo.Collection
	members *mongo.Collection
}

func NewGroupRepository(db *mongo.Database) interfaces.GroupRepository {
	return &groupRepository{
		groups:  db.Collection("groups"),
		members: db.Collection("group_members"),
	}
}

func (r *groupRepository) Create(ctx context.Context, group *models.Group) error {
	group.ID = primitive.NewObjectID()
	group.CreatedAt = time.Now()

	_, err := r.groups.InsertOne(ctx, group)
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	return nil
}

func (r *groupRepository) AddMember(ctx context.Context, member *models.GroupMember) error {
	member.ID = primitive.NewObjectID()
	member.CreatedAt = time.Now()

	_, err := r.members.InsertOne(ctx, member)
	if err != nil {
		return fmt.Errorf("failed to add group member: %w", err)
	}

	return nil
}

func (r *groupRepository) List(ctx context.Context, limit int64) ([]*models.Group, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)

	cursor, err := r.groups.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer cursor.Close(ctx)

	var groups []*models.Group
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode groups: %w", err)
	}

	return groups, nil
}
