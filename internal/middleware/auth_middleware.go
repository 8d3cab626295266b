package middleware

import (
	"net/http"
	"strings"

	"roadtrip/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthRequired validates the bearer token and sets the resolved user id on
// the context.
func AuthRequired(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := resolveUser(c, secretKey)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "valid bearer token required"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// OptionalAuth resolves the user when a valid token is present but never
// rejects the request. Used by the public feed, group listing and prompts.
func OptionalAuth(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := resolveUser(c, secretKey); ok {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

func resolveUser(c *gin.Context, secretKey string) (primitive.ObjectID, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return primitive.NilObjectID, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return primitive.NilObjectID, false
	}

	claims, err := utils.ValidateToken(tokenString, secretKey)
	if err != nil {
		return primitive.NilObjectID, false
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, false
	}

	return userID, true
}
