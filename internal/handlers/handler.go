package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"roadtrip/internal/utils"
)

// currentUserID reads the user id placed on the context by the auth
// middleware.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return primitive.NilObjectID, false
	}

	userID, ok := v.(primitive.ObjectID)
	return userID, ok
}

// tripIDParam parses the trip id path parameter. An unparseable id behaves
// like a missing trip.
func tripIDParam(c *gin.Context, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		return primitive.NilObjectID, &utils.NotFoundError{Resource: "trip"}
	}
	return id, nil
}
