package services

import (
	"context"
	"strings"

	"roadtrip/internal/models"
	"roadtrip/internal/repositories/interfaces"
	"roadtrip/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GroupService struct {
	groups interfaces.GroupRepository
	posts  interfaces.PostRepository
}

func NewGroupService(groups interfaces.GroupRepository, posts interfaces.PostRepository) *GroupService {
	return &GroupService{groups: groups, posts: posts}
}

func (s *GroupService) CreateGroup(ctx context.Context, userID primitive.ObjectID, req *models.CreateGroupRequest) (*models.Group, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, utils.NewValidationError("name required")
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}

	group := &models.Group{
		Name:       name,
		Visibility: visibility,
	}
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, err
	}

	member := &models.GroupMember{
		GroupID: group.ID,
		UserID:  userID,
		Role:    models.RoleOwner,
	}
	if err := s.groups.AddMember(ctx, member); err != nil {
		return nil, err
	}

	return group, nil
}

func (s *GroupService) ListGroups(ctx context.Context) ([]*models.Group, error) {
	return s.groups.List(ctx, utils.GroupListLimit)
}

// CreatePost persists a post in a group. Membership is not enforced; groups
// are open records.
func (s *GroupService) CreatePost(ctx context.Context, userID, groupID primitive.ObjectID, req *models.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		GroupID: groupID,
		UserID:  userID,
		Message: req.Message,
	}

	if req.TripID != "" {
		tripID, err := primitive.ObjectIDFromHex(req.TripID)
		if err != nil {
			return nil, utils.NewValidationError("invalid trip id")
		}
		post.TripID = tripID
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *GroupService) ListPosts(ctx context.Context, groupID primitive.ObjectID) ([]*models.Post, error) {
	return s.posts.ListByGroup(ctx, groupID)
}
