// Package transport presents one stable record API over interchangeable
// backings. The concrete transport is selected once at composition time:
// a local store, a remote functions endpoint, or the remote endpoint with
// local read fallback.
package transport

import (
	"context"

	"github.com/ironnest/ironnest-backend/types"
)

// RecordTransport is the public operation surface the handlers depend on.
// The shape of returned records is identical regardless of the backing.
type RecordTransport interface {
	CreateContact(ctx context.Context, input *types.ContactCreate) (*types.Contact, error)
	ListContacts(ctx context.Context) ([]types.Contact, error)
	DeleteContact(ctx context.Context, id int64) (bool, error)

	CreateBooking(ctx context.Context, input *types.BookingCreate) (*types.Booking, error)
	ListBookings(ctx context.Context) ([]types.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status types.BookingStatus) (*types.Booking, error)

	// Authenticate reports whether the given admin credentials are valid.
	// A false return is not an error.
	Authenticate(ctx context.Context, username, password string) (bool, error)
}
