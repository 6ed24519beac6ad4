package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ironnest/ironnest-backend/types"
)

type HealthHandler struct {
	version string
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// LivenessCheck reports that the server is up.
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}
