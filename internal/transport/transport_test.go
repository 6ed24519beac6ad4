package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironnest/ironnest-backend/internal/store"
	"github.com/ironnest/ironnest-backend/internal/store/memory"
	"github.com/ironnest/ironnest-backend/logger"
	"github.com/ironnest/ironnest-backend/types"
)

func init() {
	logger.IsTest = true
	logger.InitLogger()
}

func testCreds() types.Credentials {
	return types.Credentials{Username: "Admin", Password: "IronNest2025"}
}

func TestLocalTransport_SeedsContactsOnFirstList(t *testing.T) {
	lt := NewLocalTransport(memory.New(), testCreds())
	ctx := context.Background()

	contacts, err := lt.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Emma Wilson", contacts[0].Name)
	assert.Equal(t, "David Miller", contacts[1].Name)

	// A second list must not seed again.
	contacts, err = lt.ListContacts(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}

func TestLocalTransport_DoesNotSeedWhenDataExists(t *testing.T) {
	s := memory.New()
	_, err := s.CreateContact(context.Background(), &types.ContactCreate{
		Name:    "Existing",
		Email:   "existing@example.com",
		Subject: "Hi",
		Message: "Already here",
	})
	require.NoError(t, err)

	lt := NewLocalTransport(s, testCreds())
	contacts, err := lt.ListContacts(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Existing", contacts[0].Name)
}

func TestLocalTransport_SeedsBookingsOnFirstList(t *testing.T) {
	lt := NewLocalTransport(memory.New(), testCreds())

	bookings, err := lt.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	for _, b := range bookings {
		assert.Equal(t, types.BookingStatusPending, b.Status)
	}
}

func TestLocalTransport_Authenticate(t *testing.T) {
	lt := NewLocalTransport(memory.New(), testCreds())
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"valid credentials", "Admin", "IronNest2025", true},
		{"wrong password", "Admin", "wrong", false},
		{"wrong username", "admin", "IronNest2025", false},
		{"both wrong", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := lt.Authenticate(ctx, tc.username, tc.password)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func newRemoteServer(t *testing.T) (*httptest.Server, *RemoteTransport) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /contacts", func(w http.ResponseWriter, r *http.Request) {
		var in types.ContactCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(w, http.StatusOK, types.ContactResponse{
			Success: true,
			Message: "Contact form submitted successfully",
			Contact: &types.Contact{
				ID:        7,
				Name:      in.Name,
				Email:     in.Email,
				Phone:     in.Phone,
				Subject:   in.Subject,
				Message:   in.Message,
				CreatedAt: time.Now().UTC(),
			},
		})
	})
	mux.HandleFunc("GET /contacts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []types.Contact{{ID: 3, Name: "Remote Contact"}})
	})
	mux.HandleFunc("DELETE /contacts/7", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.StatusResponse{Success: true, Message: "Contact deleted successfully"})
	})
	mux.HandleFunc("PATCH /bookings/42/status", func(w http.ResponseWriter, r *http.Request) {
		var in types.BookingStatusUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(w, http.StatusOK, types.BookingResponse{
			Success: true,
			Booking: &types.Booking{ID: 42, Name: "Sarah Johnson", Status: in.Status},
		})
	})
	mux.HandleFunc("PATCH /bookings/999/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, types.ErrorResponse{Error: "Booking not found"})
	})
	mux.HandleFunc("POST /auth", func(w http.ResponseWriter, r *http.Request) {
		var in types.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.Username == "Admin" && in.Password == "IronNest2025" {
			writeJSON(w, http.StatusOK, types.LoginResponse{
				Success: true,
				Message: "Login successful",
				User:    &types.AdminUser{Username: in.Username, Role: "admin"},
			})
			return
		}
		writeJSON(w, http.StatusUnauthorized, types.LoginResponse{Success: false, Message: "Invalid credentials"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, NewRemoteTransport(srv.URL, 5*time.Second)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestRemoteTransport_CreateContact(t *testing.T) {
	_, rt := newRemoteServer(t)

	contact, err := rt.CreateContact(context.Background(), &types.ContactCreate{
		Name:    "Remote User",
		Email:   "remote@example.com",
		Subject: "Hello",
		Message: "Testing the relay",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), contact.ID)
	assert.Equal(t, "Remote User", contact.Name)
}

func TestRemoteTransport_ListContacts(t *testing.T) {
	_, rt := newRemoteServer(t)

	contacts, err := rt.ListContacts(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Remote Contact", contacts[0].Name)
}

func TestRemoteTransport_DeleteContact(t *testing.T) {
	_, rt := newRemoteServer(t)

	ok, err := rt.DeleteContact(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRemoteTransport_UpdateBookingStatus(t *testing.T) {
	_, rt := newRemoteServer(t)

	booking, err := rt.UpdateBookingStatus(context.Background(), 42, types.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, types.BookingStatusConfirmed, booking.Status)
}

func TestRemoteTransport_UpdateBookingStatusNotFound(t *testing.T) {
	_, rt := newRemoteServer(t)

	_, err := rt.UpdateBookingStatus(context.Background(), 999, types.BookingStatusConfirmed)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRemoteTransport_Authenticate(t *testing.T) {
	_, rt := newRemoteServer(t)
	ctx := context.Background()

	ok, err := rt.Authenticate(ctx, "Admin", "IronNest2025")
	require.NoError(t, err)
	assert.True(t, ok)

	// Rejected credentials are a definitive answer, not an error.
	ok, err = rt.Authenticate(ctx, "Admin", "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemoteTransport_Unreachable(t *testing.T) {
	rt := NewRemoteTransport("http://127.0.0.1:1", 500*time.Millisecond)

	_, err := rt.ListContacts(context.Background())
	assert.Error(t, err)
}

// failingTransport errors on every operation.
type failingTransport struct{}

var errUnreachable = errors.New("connection refused")

func (failingTransport) CreateContact(context.Context, *types.ContactCreate) (*types.Contact, error) {
	return nil, errUnreachable
}
func (failingTransport) ListContacts(context.Context) ([]types.Contact, error) {
	return nil, errUnreachable
}
func (failingTransport) DeleteContact(context.Context, int64) (bool, error) {
	return false, errUnreachable
}
func (failingTransport) CreateBooking(context.Context, *types.BookingCreate) (*types.Booking, error) {
	return nil, errUnreachable
}
func (failingTransport) ListBookings(context.Context) ([]types.Booking, error) {
	return nil, errUnreachable
}
func (failingTransport) UpdateBookingStatus(context.Context, int64, types.BookingStatus) (*types.Booking, error) {
	return nil, errUnreachable
}
func (failingTransport) Authenticate(context.Context, string, string) (bool, error) {
	return false, errUnreachable
}

func TestFallbackTransport_ReadsFallBackToLocal(t *testing.T) {
	local := NewLocalTransport(memory.New(), testCreds())
	ft := NewFallbackTransport(failingTransport{}, local)
	ctx := context.Background()

	contacts, err := ft.ListContacts(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts, 2)

	bookings, err := ft.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)

	ok, err := ft.Authenticate(ctx, "Admin", "IronNest2025")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFallbackTransport_WritesDoNotFallBack(t *testing.T) {
	local := NewLocalTransport(memory.New(), testCreds())
	ft := NewFallbackTransport(failingTransport{}, local)
	ctx := context.Background()

	_, err := ft.CreateContact(ctx, &types.ContactCreate{
		Name:    "Should Fail",
		Email:   "fail@example.com",
		Subject: "x",
		Message: "y",
	})
	assert.ErrorIs(t, err, errUnreachable)

	_, err = ft.CreateBooking(ctx, &types.BookingCreate{
		Name:        "Should Fail",
		Email:       "fail@example.com",
		ProjectType: "Home Gym Design",
		Date:        "2025-07-01",
		Time:        "10:00",
	})
	assert.ErrorIs(t, err, errUnreachable)

	_, err = ft.UpdateBookingStatus(ctx, 1, types.BookingStatusConfirmed)
	assert.ErrorIs(t, err, errUnreachable)

	// The local store must stay untouched by the failed writes.
	contacts, err := local.store.ListContacts(ctx)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestFallbackTransport_PrefersRemoteWhenHealthy(t *testing.T) {
	_, rt := newRemoteServer(t)
	local := NewLocalTransport(memory.New(), testCreds())
	ft := NewFallbackTransport(rt, local)

	contacts, err := ft.ListContacts(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Remote Contact", contacts[0].Name)
}
