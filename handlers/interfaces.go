package handlers

import (
	"context"

	"github.com/ironnest/ironnest-backend/types"
)

// EmailNotifier is the email relay surface the handlers depend on.
// Satisfied by services.EmailService.
type EmailNotifier interface {
	Send(ctx context.Context, msg *types.EmailMessage) (string, error)
	SendContactNotification(ctx context.Context, contact *types.Contact) bool
	SendBookingNotification(ctx context.Context, booking *types.Booking) bool
	SendBookingConfirmation(ctx context.Context, booking *types.Booking) bool
}

// ConsultationScheduler registers consultation slots for new bookings.
// Satisfied by services.CalendarService.
type ConsultationScheduler interface {
	ScheduleConsultation(ctx context.Context, booking *types.Booking) error
}
