package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ironnest/ironnest-backend/internal/store"
	"github.com/ironnest/ironnest-backend/types"
	"github.com/jackc/pgx/v5"
)

// BookingStore implements store.BookingStore using PostgreSQL.
type BookingStore struct {
	db DB
}

// NewBookingStore creates a new BookingStore.
func NewBookingStore(db DB) *BookingStore {
	return &BookingStore{db: db}
}

func (s *BookingStore) CreateBooking(ctx context.Context, input *types.BookingCreate) (*types.Booking, error) {
	// Status is always inserted as pending; client-supplied values are
	// discarded before this layer.
	query := `
		INSERT INTO bookings (name, email, phone, project_type, budget, location, date, time, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'pending')
		RETURNING id, status, created_at`

	booking := &types.Booking{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		ProjectType: input.ProjectType,
		Budget:      input.Budget,
		Location:    input.Location,
		Date:        input.Date,
		Time:        input.Time,
		Message:     input.Message,
	}
	row := s.db.QueryRow(ctx, query,
		input.Name,
		input.Email,
		input.Phone,
		input.ProjectType,
		input.Budget,
		input.Location,
		input.Date,
		input.Time,
		input.Message,
	)
	if err := row.Scan(&booking.ID, &booking.Status, &booking.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return booking, nil
}

func (s *BookingStore) ListBookings(ctx context.Context) ([]types.Booking, error) {
	query := `
		SELECT id, name, email, phone, project_type, budget, location, date, time, message, status, created_at
		FROM bookings
		ORDER BY created_at DESC, id DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]types.Booking, 0)
	for rows.Next() {
		var b types.Booking
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.ProjectType, &b.Budget,
			&b.Location, &b.Date, &b.Time, &b.Message, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingStore) UpdateBookingStatus(ctx context.Context, id int64, status types.BookingStatus) (*types.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE id = $2
		RETURNING id, name, email, phone, project_type, budget, location, date, time, message, status, created_at`

	var b types.Booking
	row := s.db.QueryRow(ctx, query, status, id)
	err := row.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.ProjectType, &b.Budget,
		&b.Location, &b.Date, &b.Time, &b.Message, &b.Status, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	return &b, nil
}
