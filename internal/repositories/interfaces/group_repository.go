package interfaces

import (
	"context"

	"roadtrip/internal/models"
)

type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	AddMember(ctx context.Context, member *models.GroupMember) error
	List(ctx context.Context, limit int64) ([]*models.Group, error)
}
