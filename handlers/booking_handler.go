package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ironnest/ironnest-backend/errors"
	"github.com/ironnest/ironnest-backend/internal/store"
	"github.com/ironnest/ironnest-backend/internal/transport"
	"github.com/ironnest/ironnest-backend/logger"
	"github.com/ironnest/ironnest-backend/types"
)

// BookingHandler handles the consultation booking endpoints.
type BookingHandler struct {
	transport transport.RecordTransport
	notifier  EmailNotifier
	scheduler ConsultationScheduler
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(t transport.RecordTransport, notifier EmailNotifier, scheduler ConsultationScheduler) *BookingHandler {
	return &BookingHandler{transport: t, notifier: notifier, scheduler: scheduler}
}

// CreateBooking godoc
// @Summary      Book a consultation
// @Description  Persists a consultation booking with status "pending" and sends business and client notifications. Notification failures do not affect persistence.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      types.BookingCreate  true  "Booking payload"
// @Success      200   {object}  types.BookingResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req types.BookingCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.ProjectType = strings.TrimSpace(req.ProjectType)
	req.Budget = strings.TrimSpace(req.Budget)
	req.Location = strings.TrimSpace(req.Location)
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	req.Message = strings.TrimSpace(req.Message)

	fields := blankFields([][2]string{
		{"name", req.Name},
		{"email", req.Email},
		{"phone", req.Phone},
		{"projectType", req.ProjectType},
		{"date", req.Date},
		{"time", req.Time},
	})
	if !req.Terms {
		fields = append(fields, apperrors.FieldError{
			Field: "terms", Reason: "must be accepted",
		})
	}
	if len(fields) > 0 {
		_ = c.Error(apperrors.ValidationFailedFields("validation_failed", fields))
		return
	}

	booking, err := h.transport.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(apperrors.NewTransportError(err, "create booking"))
		return
	}

	ctx := c.Request.Context()
	notified := h.notifier.SendBookingNotification(ctx, booking)
	confirmed := h.notifier.SendBookingConfirmation(ctx, booking)
	if err := h.scheduler.ScheduleConsultation(ctx, booking); err != nil {
		logger.GetLogger().Warnw("Failed to record consultation slot",
			"bookingId", booking.ID, "error", err)
	}

	logger.GetLogger().Infow("Consultation booked",
		"bookingId", booking.ID,
		"email", logger.MaskEmail(booking.Email),
		"projectType", booking.ProjectType,
		"businessNotified", notified,
		"clientConfirmed", confirmed)

	c.JSON(http.StatusOK, types.BookingResponse{
		Success: true,
		Message: "Booking submitted successfully",
		Booking: booking,
	})
}

// ListBookings godoc
// @Summary      List consultation bookings
// @Description  Returns all bookings, newest first.
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   types.Booking
// @Failure      500  {object}  types.ErrorResponse
// @Router       /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.transport.ListBookings(c.Request.Context())
	if err != nil {
		_ = c.Error(apperrors.NewTransportError(err, "list bookings"))
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus godoc
// @Summary      Update a booking's status
// @Description  Moves a booking to a new lifecycle status. Only the status field changes.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path      int                        true  "Booking ID"
// @Param        body  body      types.BookingStatusUpdate  true  "New status"
// @Success      200   {object}  types.BookingResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      404   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req types.BookingStatusUpdate
	if !bindJSONOrError(c, &req) {
		return
	}
	if !req.Status.IsValid() {
		_ = c.Error(apperrors.ValidationFailedFields("validation_failed", []apperrors.FieldError{
			{Field: "status", Reason: "must be one of: pending, confirmed, completed, cancelled"},
		}))
		return
	}

	booking, err := h.transport.UpdateBookingStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.NotFound("Booking", id))
			return
		}
		_ = c.Error(apperrors.NewTransportError(err, "update booking status"))
		return
	}

	logger.GetLogger().Infow("Booking status updated",
		"bookingId", booking.ID, "status", booking.Status)

	c.JSON(http.StatusOK, types.BookingResponse{
		Success: true,
		Booking: booking,
	})
}
