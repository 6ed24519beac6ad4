package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ironnest/ironnest-backend/types"
)

// mockNotifier implements EmailNotifier.
type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Send(ctx context.Context, msg *types.EmailMessage) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func (m *mockNotifier) SendContactNotification(ctx context.Context, contact *types.Contact) bool {
	args := m.Called(ctx, contact)
	return args.Bool(0)
}

func (m *mockNotifier) SendBookingNotification(ctx context.Context, booking *types.Booking) bool {
	args := m.Called(ctx, booking)
	return args.Bool(0)
}

func (m *mockNotifier) SendBookingConfirmation(ctx context.Context, booking *types.Booking) bool {
	args := m.Called(ctx, booking)
	return args.Bool(0)
}

// mockScheduler implements ConsultationScheduler.
type mockScheduler struct {
	mock.Mock
}

func (m *mockScheduler) ScheduleConsultation(ctx context.Context, booking *types.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

// relaxedNotifier answers every notification without expectations, for tests
// that exercise persistence rather than the relay.
type relaxedNotifier struct{}

func (relaxedNotifier) Send(context.Context, *types.EmailMessage) (string, error) {
	return "msg-test", nil
}
func (relaxedNotifier) SendContactNotification(context.Context, *types.Contact) bool { return true }
func (relaxedNotifier) SendBookingNotification(context.Context, *types.Booking) bool { return true }
func (relaxedNotifier) SendBookingConfirmation(context.Context, *types.Booking) bool { return true }

type relaxedScheduler struct{}

func (relaxedScheduler) ScheduleConsultation(context.Context, *types.Booking) error { return nil }
