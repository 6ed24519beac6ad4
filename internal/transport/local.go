package transport

import (
	"context"
	"crypto/subtle"
	"sync"

	"github.com/ironnest/ironnest-backend/internal/store"
	"github.com/ironnest/ironnest-backend/logger"
	"github.com/ironnest/ironnest-backend/types"
)

// LocalTransport serves every operation from a local record store.
// Authentication is a constant-time comparison against the configured admin
// credentials.
//
// The first list operation that finds its collection empty seeds it with
// sample records so the admin dashboard has content in fresh environments.
type LocalTransport struct {
	store store.Store
	creds types.Credentials

	mu             sync.Mutex
	seededContacts bool
	seededBookings bool
}

// NewLocalTransport creates a local transport over the given store.
func NewLocalTransport(s store.Store, creds types.Credentials) *LocalTransport {
	return &LocalTransport{store: s, creds: creds}
}

func sampleContacts() []types.ContactCreate {
	return []types.ContactCreate{
		{
			Name:    "David Miller",
			Email:   "david.miller@outlook.com",
			Phone:   "+27 81 999 1234",
			Subject: "Studio Gym Setup Inquiry",
			Message: "Hello! I run a personal training studio and need to upgrade our equipment. We have about 50 square meters and are looking for professional-grade equipment. Can we schedule a consultation to discuss options and pricing?",
		},
		{
			Name:    "Emma Wilson",
			Email:   "emma.wilson@gmail.com",
			Phone:   "+27 82 765 4321",
			Subject: "Home Gym Equipment Question",
			Message: "Hi there! I saw your work online and I am impressed. I have a small home gym but some equipment needs repair. Do you also provide maintenance services? My treadmill motor is making strange noises.",
		},
	}
}

func sampleBookings() []types.BookingCreate {
	return []types.BookingCreate{
		{
			Name:        "Sarah Johnson",
			Email:       "sarah.j@gmail.com",
			Phone:       "+27 83 555 7890",
			ProjectType: "Home Gym Design",
			Location:    "Cape Town, Claremont",
			Date:        "2025-06-15",
			Time:        "10:00",
			Message:     "Looking to convert my garage into a home gym. Space is about 30 square meters.",
			Terms:       true,
		},
		{
			Name:        "Mike Thompson",
			Email:       "mike.thompson@email.com",
			Phone:       "+27 84 123 4567",
			ProjectType: "Equipment Installation",
			Location:    "Stellenbosch",
			Date:        "2025-06-20",
			Time:        "14:00",
			Message:     "Need help installing commercial-grade equipment for our new studio.",
			Terms:       true,
		},
	}
}

func (t *LocalTransport) seedContactsIfEmpty(ctx context.Context, existing []types.Contact) ([]types.Contact, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.seededContacts || len(existing) > 0 {
		t.seededContacts = true
		return existing, nil
	}
	log := logger.GetLogger()
	log.Infow("Seeding empty contact store with sample data")
	for i := range sampleContacts() {
		input := sampleContacts()[i]
		if _, err := t.store.CreateContact(ctx, &input); err != nil {
			return nil, err
		}
	}
	t.seededContacts = true
	return t.store.ListContacts(ctx)
}

func (t *LocalTransport) seedBookingsIfEmpty(ctx context.Context, existing []types.Booking) ([]types.Booking, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.seededBookings || len(existing) > 0 {
		t.seededBookings = true
		return existing, nil
	}
	log := logger.GetLogger()
	log.Infow("Seeding empty booking store with sample data")
	for i := range sampleBookings() {
		input := sampleBookings()[i]
		if _, err := t.store.CreateBooking(ctx, &input); err != nil {
			return nil, err
		}
	}
	t.seededBookings = true
	return t.store.ListBookings(ctx)
}

func (t *LocalTransport) CreateContact(ctx context.Context, input *types.ContactCreate) (*types.Contact, error) {
	return t.store.CreateContact(ctx, input)
}

func (t *LocalTransport) ListContacts(ctx context.Context) ([]types.Contact, error) {
	contacts, err := t.store.ListContacts(ctx)
	if err != nil {
		return nil, err
	}
	return t.seedContactsIfEmpty(ctx, contacts)
}

func (t *LocalTransport) DeleteContact(ctx context.Context, id int64) (bool, error) {
	return t.store.DeleteContact(ctx, id)
}

func (t *LocalTransport) CreateBooking(ctx context.Context, input *types.BookingCreate) (*types.Booking, error) {
	return t.store.CreateBooking(ctx, input)
}

func (t *LocalTransport) ListBookings(ctx context.Context) ([]types.Booking, error) {
	bookings, err := t.store.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	return t.seedBookingsIfEmpty(ctx, bookings)
}

func (t *LocalTransport) UpdateBookingStatus(ctx context.Context, id int64, status types.BookingStatus) (*types.Booking, error) {
	return t.store.UpdateBookingStatus(ctx, id, status)
}

// Authenticate compares the submitted pair against the configured admin
// credentials in constant time. Both comparisons always run.
func (t *LocalTransport) Authenticate(_ context.Context, username, password string) (bool, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(t.creds.Username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(t.creds.Password))
	return userOK&passOK == 1, nil
}
