// Package jsonfile implements the record stores on top of a single JSON
// file holding named collections. It mirrors the layout the site's client
// uses for its browser-local fallback storage: one JSON array of records per
// fixed collection key.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ironnest/ironnest-backend/internal/store"
	"github.com/ironnest/ironnest-backend/types"
)

const (
	contactsKey = "ironnest_contacts"
	bookingsKey = "ironnest_bookings"
)

// collections is the on-disk document: named collections of records plus
// the next id per collection. Persisting the counters keeps ids from being
// recycled after the highest-id record is deleted.
type collections struct {
	Contacts      []types.Contact `json:"ironnest_contacts"`
	Bookings      []types.Booking `json:"ironnest_bookings"`
	NextContactID int64           `json:"ironnest_next_contact_id,omitempty"`
	NextBookingID int64           `json:"ironnest_next_booking_id,omitempty"`
}

// Store persists contacts and bookings to a JSON file. Every mutation
// rewrites the file atomically (temp file + rename). Access is serialized
// by a mutex; one process owns the file.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a jsonfile store backed by the given path. The file is
// created on first write.
func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) load() (*collections, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &collections{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var doc collections
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return &doc, nil
}

func (s *Store) save(doc *collections) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".ironnest-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// nextContactID takes the persisted counter, bumping it past the highest
// stored id for files written before counters existed.
func nextContactID(doc *collections) int64 {
	id := doc.NextContactID
	for _, c := range doc.Contacts {
		if c.ID >= id {
			id = c.ID + 1
		}
	}
	if id < 1 {
		id = 1
	}
	doc.NextContactID = id + 1
	return id
}

func nextBookingID(doc *collections) int64 {
	id := doc.NextBookingID
	for _, b := range doc.Bookings {
		if b.ID >= id {
			id = b.ID + 1
		}
	}
	if id < 1 {
		id = 1
	}
	doc.NextBookingID = id + 1
	return id
}

func (s *Store) CreateContact(_ context.Context, input *types.ContactCreate) (*types.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	contact := types.Contact{
		ID:        nextContactID(doc),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}
	doc.Contacts = append(doc.Contacts, contact)
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (s *Store) ListContacts(_ context.Context) ([]types.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	// Records are appended in creation order; reverse for newest first.
	out := make([]types.Contact, 0, len(doc.Contacts))
	for i := len(doc.Contacts) - 1; i >= 0; i-- {
		out = append(out, doc.Contacts[i])
	}
	return out, nil
}

func (s *Store) DeleteContact(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}
	kept := doc.Contacts[:0]
	removed := false
	for _, c := range doc.Contacts {
		if c.ID == id {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	if !removed {
		return false, nil
	}
	doc.Contacts = kept
	if err := s.save(doc); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) CreateBooking(_ context.Context, input *types.BookingCreate) (*types.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	booking := types.Booking{
		ID:          nextBookingID(doc),
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
	doc.Bookings = append(doc.Bookings, booking)
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *Store) ListBookings(_ context.Context) ([]types.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]types.Booking, 0, len(doc.Bookings))
	for i := len(doc.Bookings) - 1; i >= 0; i-- {
		out = append(out, doc.Bookings[i])
	}
	return out, nil
}

func (s *Store) UpdateBookingStatus(_ context.Context, id int64, status types.BookingStatus) (*types.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Bookings {
		if doc.Bookings[i].ID == id {
			doc.Bookings[i].Status = status
			if err := s.save(doc); err != nil {
				return nil, err
			}
			booking := doc.Bookings[i]
			return &booking, nil
		}
	}
	return nil, store.ErrNotFound
}
