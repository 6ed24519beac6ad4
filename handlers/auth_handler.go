package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ironnest/ironnest-backend/errors"
	"github.com/ironnest/ironnest-backend/internal/transport"
	"github.com/ironnest/ironnest-backend/logger"
	"github.com/ironnest/ironnest-backend/types"
)

// AuthHandler handles the prototype admin login endpoint. No session or
// token is issued; the dashboard only needs a yes/no answer.
type AuthHandler struct {
	transport transport.RecordTransport
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(t transport.RecordTransport) *AuthHandler {
	return &AuthHandler{transport: t}
}

// Login godoc
// @Summary      Admin login
// @Description  Verifies the admin credential pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      types.LoginRequest  true  "Credentials"
// @Success      200   {object}  types.LoginResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      401   {object}  types.LoginResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /auth [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	ok, err := h.transport.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		_ = c.Error(apperrors.NewTransportError(err, "authenticate"))
		return
	}
	if !ok {
		logger.GetLogger().Warnw("Admin login rejected", "username", req.Username)
		c.JSON(http.StatusUnauthorized, types.LoginResponse{
			Success: false,
			Message: "Invalid credentials",
		})
		return
	}

	c.JSON(http.StatusOK, types.LoginResponse{
		Success: true,
		Message: "Login successful",
		User: &types.AdminUser{
			Username: req.Username,
			Role:     "admin",
		},
	})
}
