package memory

import (
	"context"
	"testing"
	"time"

	"github.com/ironnest/ironnest-backend/internal/store"
	"github.com/ironnest/ironnest-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContactInput() *types.ContactCreate {
	return &types.ContactCreate{
		Name:    "David Miller",
		Email:   "david.miller@outlook.com",
		Phone:   "+27 81 999 1234",
		Subject: "Studio Gym Setup Inquiry",
		Message: "Looking for professional-grade equipment for a 50sqm studio.",
	}
}

func testBookingInput() *types.BookingCreate {
	return &types.BookingCreate{
		Name:        "Sarah Johnson",
		Email:       "sarah.j@gmail.com",
		Phone:       "+27835557890",
		ProjectType: "home-gym",
		Date:        "2025-06-15",
		Time:        "10:00",
		Message:     "Garage conversion, about 30 square meters.",
		Terms:       true,
	}
}

func TestCreateContactAssignsIDAndTimestamp(t *testing.T) {
	s := New()
	ctx := context.Background()
	before := time.Now().UTC()

	first, err := s.CreateContact(ctx, testContactInput())
	require.NoError(t, err)
	second, err := s.CreateContact(ctx, testContactInput())
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.Before(before))
	assert.Equal(t, "David Miller", first.Name)
}

func TestContactIDsNeverReused(t *testing.T) {
	s := New()
	ctx := context.Background()

	first, err := s.CreateContact(ctx, testContactInput())
	require.NoError(t, err)

	removed, err := s.DeleteContact(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	next, err := s.CreateContact(ctx, testContactInput())
	require.NoError(t, err)
	assert.Greater(t, next.ID, first.ID)
}

func TestListContactsNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.CreateContact(ctx, testContactInput())
		require.NoError(t, err)
	}

	contacts, err := s.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, int64(3), contacts[0].ID)
	assert.Equal(t, int64(1), contacts[2].ID)
}

func TestDeleteContactIdempotent(t *testing.T) {
	s := New()
	ctx := context.Background()

	c, err := s.CreateContact(ctx, testContactInput())
	require.NoError(t, err)

	removed, err := s.DeleteContact(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	// Second delete of the same id and delete of a never-existing id both
	// report false and leave the store unchanged.
	removed, err = s.DeleteContact(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = s.DeleteContact(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, removed)

	contacts, err := s.ListContacts(ctx)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestCreateBookingForcesPendingStatus(t *testing.T) {
	s := New()
	ctx := context.Background()

	booking, err := s.CreateBooking(ctx, testBookingInput())
	require.NoError(t, err)

	assert.Equal(t, types.BookingStatusPending, booking.Status)
	assert.Positive(t, booking.ID)
	assert.Equal(t, "home-gym", booking.ProjectType)
}

func TestUpdateBookingStatusChangesOnlyStatus(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.CreateBooking(ctx, testBookingInput())
	require.NoError(t, err)

	updated, err := s.UpdateBookingStatus(ctx, created.ID, types.BookingStatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, types.BookingStatusConfirmed, updated.Status)

	want := *created
	want.Status = types.BookingStatusConfirmed
	assert.Equal(t, want, *updated)
}

func TestUpdateBookingStatusUnknownID(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.CreateBooking(ctx, testBookingInput())
	require.NoError(t, err)

	_, err = s.UpdateBookingStatus(ctx, 42, types.BookingStatusConfirmed)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Store unchanged.
	bookings, err := s.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, types.BookingStatusPending, bookings[0].Status)
}
