package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ironnest/ironnest-backend/errors"
	"github.com/ironnest/ironnest-backend/internal/transport"
	"github.com/ironnest/ironnest-backend/logger"
	"github.com/ironnest/ironnest-backend/types"
)

// ContactHandler handles the contact form endpoints.
type ContactHandler struct {
	transport transport.RecordTransport
	notifier  EmailNotifier
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(t transport.RecordTransport, notifier EmailNotifier) *ContactHandler {
	return &ContactHandler{transport: t, notifier: notifier}
}

// CreateContact godoc
// @Summary      Submit the contact form
// @Description  Persists a contact inquiry and notifies the business inbox. Notification failures do not affect persistence.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body      types.ContactCreate  true  "Contact payload"
// @Success      200   {object}  types.ContactResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req types.ContactCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if fields := blankFields([][2]string{
		{"name", req.Name},
		{"email", req.Email},
		{"subject", req.Subject},
		{"message", req.Message},
	}); len(fields) > 0 {
		_ = c.Error(apperrors.ValidationFailedFields("validation_failed", fields))
		return
	}

	contact, err := h.transport.CreateContact(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(apperrors.NewTransportError(err, "create contact"))
		return
	}

	notified := h.notifier.SendContactNotification(c.Request.Context(), contact)
	logger.GetLogger().Infow("Contact form submitted",
		"contactId", contact.ID,
		"email", logger.MaskEmail(contact.Email),
		"notified", notified)

	c.JSON(http.StatusOK, types.ContactResponse{
		Success: true,
		Message: "Contact form submitted successfully",
		Contact: contact,
	})
}

// ListContacts godoc
// @Summary      List contact inquiries
// @Description  Returns all contact inquiries, newest first.
// @Tags         contacts
// @Produce      json
// @Success      200  {array}   types.Contact
// @Failure      500  {object}  types.ErrorResponse
// @Router       /contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	contacts, err := h.transport.ListContacts(c.Request.Context())
	if err != nil {
		_ = c.Error(apperrors.NewTransportError(err, "list contacts"))
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// DeleteContact godoc
// @Summary      Delete a contact inquiry
// @Description  Removes a contact inquiry. Deleting an unknown id is not an error.
// @Tags         contacts
// @Produce      json
// @Param        id   path      int  true  "Contact ID"
// @Success      200  {object}  types.StatusResponse
// @Failure      400  {object}  types.ErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	removed, err := h.transport.DeleteContact(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(apperrors.NewTransportError(err, "delete contact"))
		return
	}
	if !removed {
		logger.GetLogger().Debugw("Delete requested for unknown contact", "contactId", id)
	}

	c.JSON(http.StatusOK, types.StatusResponse{
		Success: true,
		Message: "Contact deleted successfully",
	})
}
