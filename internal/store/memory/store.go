// Package memory provides an in-memory implementation of the record stores,
// used in development and as the default fallback backing when neither a
// database nor a data file is configured.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ironnest/ironnest-backend/internal/store"
	"github.com/ironnest/ironnest-backend/types"
)

// Store keeps contacts and bookings in maps guarded by a mutex. IDs are
// monotonically increasing per entity kind and never reused.
type Store struct {
	mu            sync.Mutex
	contacts      map[int64]types.Contact
	bookings      map[int64]types.Booking
	nextContactID int64
	nextBookingID int64
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		contacts:      make(map[int64]types.Contact),
		bookings:      make(map[int64]types.Booking),
		nextContactID: 1,
		nextBookingID: 1,
	}
}

func (s *Store) CreateContact(_ context.Context, input *types.ContactCreate) (*types.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact := types.Contact{
		ID:        s.nextContactID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}
	s.nextContactID++
	s.contacts[contact.ID] = contact
	return &contact, nil
}

func (s *Store) ListContacts(_ context.Context) ([]types.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) DeleteContact(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contacts[id]; !ok {
		return false, nil
	}
	delete(s.contacts, id)
	return true, nil
}

func (s *Store) CreateBooking(_ context.Context, input *types.BookingCreate) (*types.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking := types.Booking{
		ID:          s.nextBookingID,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		ProjectType: input.ProjectType,
		Budget:      input.Budget,
		Location:    input.Location,
		Date:        input.Date,
		Time:        input.Time,
		Message:     input.Message,
		Status:      types.BookingStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	s.nextBookingID++
	s.bookings[booking.ID] = booking
	return &booking, nil
}

func (s *Store) ListBookings(_ context.Context) ([]types.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) UpdateBookingStatus(_ context.Context, id int64, status types.BookingStatus) (*types.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	booking.Status = status
	s.bookings[id] = booking
	return &booking, nil
}
