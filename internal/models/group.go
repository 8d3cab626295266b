package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group member roles
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

type Group struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Visibility string             `json:"visibility" bson:"visibility"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
}

type GroupMember struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	GroupID   primitive.ObjectID `json:"group_id" bson:"group_id"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	Role      string             `json:"role" bson:"role"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

type Post struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	GroupID   primitive.ObjectID `json:"group_id" bson:"group_id"`
	TripID    primitive.ObjectID `json:"trip_id,omitempty" bson:"trip_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	Message   string             `json:"message" bson:"message"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

type CreateGroupRequest struct {
	Name       string `json:"name" binding:"required"`
	Visibility string `json:"visibility"`
}

type CreatePostRequest struct {
	TripID  string `json:"trip_id"`
	Message string `json:"message"`
}
