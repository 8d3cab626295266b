package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	RespondError(c, err)
	return recorder
}

func TestRespondErrorStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, respond(NewValidationError("bad input")).Code)
	assert.Equal(t, http.StatusNotFound, respond(&NotFoundError{Resource: "trip"}).Code)
	assert.Equal(t, http.StatusConflict, respond(&ConflictError{Message: "duplicate"}).Code)
	assert.Equal(t, http.StatusBadGateway, respond(&UpstreamError{Service: "routing", Err: errors.New("down")}).Code)
	assert.Equal(t, http.StatusServiceUnavailable, respond(&UnavailableError{Capability: "video", Reason: "no encoder"}).Code)
	assert.Equal(t, http.StatusInternalServerError, respond(errors.New("boom")).Code)
}

func TestRespondErrorRecognizesWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("saving trip: %w", &NotFoundError{Resource: "trip"})
	assert.Equal(t, http.StatusNotFound, respond(wrapped).Code)
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsUpstream(&UpstreamError{Service: "poi search", Err: errors.New("x")}))
	assert.False(t, IsUpstream(errors.New("x")))
	assert.False(t, IsNotFound(nil))
}
