package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roadtrip/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func newAuthTestRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthRequired(testSecret), handler)
	router.GET("/open", OptionalAuth(testSecret), handler)
	return router
}

func echoUser(c *gin.Context) {
	if userID, exists := c.Get("user_id"); exists {
		c.String(http.StatusOK, userID.(primitive.ObjectID).Hex())
		return
	}
	c.String(http.StatusOK, "anonymous")
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	router := newAuthTestRouter(echoUser)
	userID := primitive.NewObjectID()

	token, err := utils.GenerateToken(userID, "a@b.c", testSecret, time.Hour)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, userID.Hex(), recorder.Body.String())
}

func TestAuthRequiredRejectsBadTokens(t *testing.T) {
	router := newAuthTestRouter(echoUser)

	cases := map[string]string{
		"missing header":   "",
		"not bearer":       "Basic abc123",
		"garbage token":    "Bearer not.a.jwt",
		"wrong secret key": "",
	}

	wrongSecret, err := utils.GenerateToken(primitive.NewObjectID(), "a@b.c", "other-secret", time.Hour)
	require.NoError(t, err)
	cases["wrong secret key"] = "Bearer " + wrongSecret

	for name, header := range cases {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code, name)
	}
}

func TestAuthRequiredRejectsExpiredToken(t *testing.T) {
	router := newAuthTestRouter(echoUser)

	token, err := utils.GenerateToken(primitive.NewObjectID(), "a@b.c", testSecret, -time.Minute)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestOptionalAuthNeverRejects(t *testing.T) {
	router := newAuthTestRouter(echoUser)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "anonymous", recorder.Body.String())

	userID := primitive.NewObjectID()
	token, err := utils.GenerateToken(userID, "a@b.c", testSecret, time.Hour)
	require.NoError(t, err)

	recorder = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, userID.Hex(), recorder.Body.String())
}
