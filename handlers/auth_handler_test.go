package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironnest/ironnest-backend/middleware"
	"github.com/ironnest/ironnest-backend/types"
)

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/api/auth", NewAuthHandler(testTransport()).Login)
	return r
}

func TestLogin(t *testing.T) {
	r := newAuthRouter()

	w := doJSON(r, http.MethodPost, "/api/auth", types.LoginRequest{
		Username: "Admin",
		Password: "IronNest2025",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Admin", resp.User.Username)
	assert.Equal(t, "admin", resp.User.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r := newAuthRouter()

	w := doJSON(r, http.MethodPost, "/api/auth", types.LoginRequest{
		Username: "Admin",
		Password: "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Nil(t, resp.User)
}

func TestLogin_MissingFields(t *testing.T) {
	r := newAuthRouter()

	w := doJSON(r, http.MethodPost, "/api/auth", map[string]string{"username": "Admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
