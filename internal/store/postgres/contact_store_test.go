package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ironnest/ironnest-backend/types"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func testContactInput() *types.ContactCreate {
	return &types.ContactCreate{
		Name:    "David Miller",
		Email:   "david.miller@outlook.com",
		Phone:   "+27 81 999 1234",
		Subject: "Studio Gym Setup Inquiry",
		Message: "Can we schedule a consultation to discuss options and pricing?",
	}
}

func TestContactStore_CreateContact(t *testing.T) {
	mock := setupMockDB(t)
	s := NewContactStore(mock)
	ctx := context.Background()
	input := testContactInput()

	t.Run("successful creation", func(t *testing.T) {
		createdAt := time.Now().UTC()
		rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt)

		mock.ExpectQuery(`INSERT INTO contacts \(name, email, phone, subject, message\)`).
			WithArgs(input.Name, input.Email, input.Phone, input.Subject, input.Message).
			WillReturnRows(rows)

		contact, err := s.CreateContact(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, int64(7), contact.ID)
		assert.Equal(t, createdAt, contact.CreatedAt)
		assert.Equal(t, input.Email, contact.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO contacts`).
			WithArgs(input.Name, input.Email, input.Phone, input.Subject, input.Message).
			WillReturnError(errors.New("connection reset"))

		_, err := s.CreateContact(ctx, input)
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestContactStore_ListContacts(t *testing.T) {
	mock := setupMockDB(t)
	s := NewContactStore(mock)
	ctx := context.Background()

	t.Run("returns rows newest first", func(t *testing.T) {
		now := time.Now().UTC()
		rows := pgxmock.NewRows([]string{"id", "name", "email", "phone", "subject", "message", "created_at"}).
			AddRow(int64(2), "Emma Wilson", "emma.wilson@gmail.com", "+27 82 765 4321",
				"Home Gym Equipment Question", "Do you also provide maintenance services?", now).
			AddRow(int64(1), "David Miller", "david.miller@outlook.com", "+27 81 999 1234",
				"Studio Gym Setup Inquiry", "We have about 50 square meters.", now.Add(-time.Hour))

		mock.ExpectQuery(`SELECT id, name, email, phone, subject, message, created_at\s+FROM contacts`).
			WillReturnRows(rows)

		contacts, err := s.ListContacts(ctx)
		require.NoError(t, err)
		require.Len(t, contacts, 2)
		assert.Equal(t, int64(2), contacts[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, email, phone, subject, message, created_at\s+FROM contacts`).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "phone", "subject", "message", "created_at"}))

		contacts, err := s.ListContacts(ctx)
		require.NoError(t, err)
		assert.NotNil(t, contacts)
		assert.Empty(t, contacts)
	})
}

func TestContactStore_DeleteContact(t *testing.T) {
	mock := setupMockDB(t)
	s := NewContactStore(mock)
	ctx := context.Background()

	t.Run("existing row", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM contacts WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		removed, err := s.DeleteContact(ctx, 3)
		require.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("absent row reports false", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM contacts WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		removed, err := s.DeleteContact(ctx, 99)
		require.NoError(t, err)
		assert.False(t, removed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
