// Package store defines the persistence contracts for contacts and bookings.
// Implementations live in the postgres, memory and jsonfile subpackages.
package store

import (
	"context"
	"errors"

	"github.com/ironnest/ironnest-backend/types"
)

// ErrNotFound is returned when an operation targets a record that does not
// exist in the backing store.
var ErrNotFound = errors.New("record not found")

// ContactStore handles contact persistence.
type ContactStore interface {
	// CreateContact assigns id and createdAt and persists the contact.
	CreateContact(ctx context.Context, input *types.ContactCreate) (*types.Contact, error)
	// ListContacts returns all contacts, newest first.
	ListContacts(ctx context.Context) ([]types.Contact, error)
	// DeleteContact removes the contact with the given id and reports
	// whether a record was actually removed. Idempotent under retry.
	DeleteContact(ctx context.Context, id int64) (bool, error)
}

// BookingStore handles booking persistence. Status enumeration is enforced
// at the API boundary, not here.
type BookingStore interface {
	// CreateBooking assigns id and createdAt, forces status to pending
	// regardless of client input, and persists the booking.
	CreateBooking(ctx context.Context, input *types.BookingCreate) (*types.Booking, error)
	// ListBookings returns all bookings, newest first.
	ListBookings(ctx context.Context) ([]types.Booking, error)
	// UpdateBookingStatus replaces only the status field and returns the
	// updated booking, or ErrNotFound when the id is absent.
	UpdateBookingStatus(ctx context.Context, id int64, status types.BookingStatus) (*types.Booking, error)
}

// Store combines both entity stores.
type Store interface {
	ContactStore
	BookingStore
}
