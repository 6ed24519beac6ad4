package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironnest/ironnest-backend/errors"
	"github.com/ironnest/ironnest-backend/logger"
)

func init() {
	logger.IsTest = true
	logger.InitLogger()
	gin.SetMode(gin.TestMode)
}

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/test", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler_ValidationErrorWithFields(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		_ = c.Error(errors.ValidationFailedFields("validation_failed", []errors.FieldError{
			{Field: "email", Reason: "is required"},
		}))
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error   string `json:"error"`
		Details []struct {
			Field  string `json:"field"`
			Reason string `json:"reason"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation_failed", body.Error)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "email", body.Details[0].Field)
}

func TestErrorHandler_NotFound(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		_ = c.Error(errors.NotFound("Booking", 42))
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestErrorHandler_UnknownErrorIs500(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		_ = c.Error(assert.AnError)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestErrorHandler_NoErrorPassesThrough(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
