package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ironnest/ironnest-backend/internal/store"
	"github.com/ironnest/ironnest-backend/types"
)

// RemoteTransport serves operations by calling a remote functions endpoint
// exposing the same record API. All calls carry a bounded timeout and
// surface failures rather than hang.
type RemoteTransport struct {
	baseURL    string
	httpClient *http.Client
}

// RemoteOption configures a RemoteTransport.
type RemoteOption func(*RemoteTransport)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) RemoteOption {
	return func(t *RemoteTransport) {
		t.httpClient = client
	}
}

// NewRemoteTransport creates a remote transport against the given base URL
// (e.g. "https://ironnest.example.com/api").
func NewRemoteTransport(baseURL string, timeout time.Duration, opts ...RemoteOption) *RemoteTransport {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	t := &RemoteTransport{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *RemoteTransport) do(ctx context.Context, method, path string, body interface{}, out interface{}) (int, error) {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, reqBody)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("remote %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode remote %s %s response: %w", method, path, err)
		}
	}
	return resp.StatusCode, nil
}

func (t *RemoteTransport) CreateContact(ctx context.Context, input *types.ContactCreate) (*types.Contact, error) {
	var resp types.ContactResponse
	status, err := t.do(ctx, http.MethodPost, "/contacts", input, &resp)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK || !resp.Success || resp.Contact == nil {
		return nil, fmt.Errorf("remote contact create failed with status %d", status)
	}
	return resp.Contact, nil
}

func (t *RemoteTransport) ListContacts(ctx context.Context) ([]types.Contact, error) {
	var contacts []types.Contact
	status, err := t.do(ctx, http.MethodGet, "/contacts", nil, &contacts)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("remote contact list failed with status %d", status)
	}
	return contacts, nil
}

func (t *RemoteTransport) DeleteContact(ctx context.Context, id int64) (bool, error) {
	var resp types.StatusResponse
	status, err := t.do(ctx, http.MethodDelete, fmt.Sprintf("/contacts/%d", id), nil, &resp)
	if err != nil {
		return false, err
	}
	if status != http.StatusOK {
		return false, fmt.Errorf("remote contact delete failed with status %d", status)
	}
	return resp.Success, nil
}

func (t *RemoteTransport) CreateBooking(ctx context.Context, input *types.BookingCreate) (*types.Booking, error) {
	var resp types.BookingResponse
	status, err := t.do(ctx, http.MethodPost, "/bookings", input, &resp)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK || !resp.Success || resp.Booking == nil {
		return nil, fmt.Errorf("remote booking create failed with status %d", status)
	}
	return resp.Booking, nil
}

func (t *RemoteTransport) ListBookings(ctx context.Context) ([]types.Booking, error) {
	var bookings []types.Booking
	status, err := t.do(ctx, http.MethodGet, "/bookings", nil, &bookings)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("remote booking list failed with status %d", status)
	}
	return bookings, nil
}

func (t *RemoteTransport) UpdateBookingStatus(ctx context.Context, id int64, newStatus types.BookingStatus) (*types.Booking, error) {
	body := types.BookingStatusUpdate{Status: newStatus}
	var resp types.BookingResponse
	status, err := t.do(ctx, http.MethodPatch, fmt.Sprintf("/bookings/%d/status", id), body, &resp)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusNotFound:
		return nil, store.ErrNotFound
	case status != http.StatusOK || resp.Booking == nil:
		return nil, fmt.Errorf("remote booking status update failed with status %d", status)
	}
	return resp.Booking, nil
}

func (t *RemoteTransport) Authenticate(ctx context.Context, username, password string) (bool, error) {
	body := types.LoginRequest{Username: username, Password: password}
	var resp types.LoginResponse
	status, err := t.do(ctx, http.MethodPost, "/auth", body, &resp)
	if err != nil {
		return false, err
	}
	// 401 carries success=false; both are a definitive rejection, not a
	// transport failure.
	if status != http.StatusOK && status != http.StatusUnauthorized {
		return false, fmt.Errorf("remote auth failed with status %d", status)
	}
	return resp.Success, nil
}
