package transport

import (
	"context"

	"github.com/ironnest/ironnest-backend/logger"
	"github.com/ironnest/ironnest-backend/types"
)

// FallbackTransport tries the remote transport first and falls back to the
// local transport when the remote is unreachable. Only reads and auth fall
// back; writes surface the remote failure so records never silently land in
// a store the remote deployment cannot see.
type FallbackTransport struct {
	remote RecordTransport
	local  RecordTransport
}

// NewFallbackTransport composes a remote-primary, local-fallback transport.
func NewFallbackTransport(remote, local RecordTransport) *FallbackTransport {
	return &FallbackTransport{remote: remote, local: local}
}

func (t *FallbackTransport) CreateContact(ctx context.Context, input *types.ContactCreate) (*types.Contact, error) {
	return t.remote.CreateContact(ctx, input)
}

func (t *FallbackTransport) ListContacts(ctx context.Context) ([]types.Contact, error) {
	contacts, err := t.remote.ListContacts(ctx)
	if err != nil {
		logger.GetLogger().Warnw("Remote contact list failed, falling back to local store", "error", err)
		return t.local.ListContacts(ctx)
	}
	return contacts, nil
}

func (t *FallbackTransport) DeleteContact(ctx context.Context, id int64) (bool, error) {
	return t.remote.DeleteContact(ctx, id)
}

func (t *FallbackTransport) CreateBooking(ctx context.Context, input *types.BookingCreate) (*types.Booking, error) {
	return t.remote.CreateBooking(ctx, input)
}

func (t *FallbackTransport) ListBookings(ctx context.Context) ([]types.Booking, error) {
	bookings, err := t.remote.ListBookings(ctx)
	if err != nil {
		logger.GetLogger().Warnw("Remote booking list failed, falling back to local store", "error", err)
		return t.local.ListBookings(ctx)
	}
	return bookings, nil
}

func (t *FallbackTransport) UpdateBookingStatus(ctx context.Context, id int64, status types.BookingStatus) (*types.Booking, error) {
	return t.remote.UpdateBookingStatus(ctx, id, status)
}

func (t *FallbackTransport) Authenticate(ctx context.Context, username, password string) (bool, error) {
	ok, err := t.remote.Authenticate(ctx, username, password)
	if err != nil {
		logger.GetLogger().Warnw("Remote auth failed, falling back to local credentials", "error", err)
		return t.local.Authenticate(ctx, username, password)
	}
	return ok, nil
}
