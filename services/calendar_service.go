package services

import (
	"context"
	"fmt"

	"github.com/ironnest/ironnest-backend/logger"
	"github.com/ironnest/ironnest-backend/types"
)

// CalendarService records consultation slots. Calendar provider integration
// is not wired yet; for now the service logs the event so bookings are
// traceable in the application logs.
//
// TODO: integrate with the business Google Calendar once API access is set up.
type CalendarService struct{}

func NewCalendarService() *CalendarService {
	return &CalendarService{}
}

// ScheduleConsultation registers the booking's consultation slot.
func (s *CalendarService) ScheduleConsultation(_ context.Context, booking *types.Booking) error {
	logger.GetLogger().Infow("Consultation slot recorded",
		"bookingId", booking.ID,
		"projectType", booking.ProjectType,
		"slot", fmt.Sprintf("%s %s", booking.Date, booking.Time))
	return nil
}
