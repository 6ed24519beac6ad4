package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ironnest/ironnest-backend/errors"
	"github.com/ironnest/ironnest-backend/types"
)

// EmailHandler exposes the raw email relay endpoint.
type EmailHandler struct {
	notifier EmailNotifier
}

// NewEmailHandler creates a new EmailHandler.
func NewEmailHandler(notifier EmailNotifier) *EmailHandler {
	return &EmailHandler{notifier: notifier}
}

// SendEmail godoc
// @Summary      Send a raw email
// @Description  Relays an arbitrary email through the configured provider.
// @Tags         email
// @Accept       json
// @Produce      json
// @Param        body  body      types.EmailMessage  true  "Email payload"
// @Success      200   {object}  types.EmailSendResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /send_email [post]
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var msg types.EmailMessage
	if !bindJSONOrError(c, &msg) {
		return
	}

	messageID, err := h.notifier.Send(c.Request.Context(), &msg)
	if err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.ServerError, "Failed to send email"))
		return
	}

	c.JSON(http.StatusOK, types.EmailSendResponse{
		Success:   true,
		MessageID: messageID,
	})
}
