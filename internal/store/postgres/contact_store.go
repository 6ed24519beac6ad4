package postgres

import (
	"context"
	"fmt"

	"github.com/ironnest/ironnest-backend/types"
)

// ContactStore implements store.ContactStore using PostgreSQL.
type ContactStore struct {
	db DB
}

// NewContactStore creates a new ContactStore.
func NewContactStore(db DB) *ContactStore {
	return &ContactStore{db: db}
}

func (s *ContactStore) CreateContact(ctx context.Context, input *types.ContactCreate) (*types.Contact, error) {
	query := `
		INSERT INTO contacts (name, email, phone, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	contact := &types.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}
	row := s.db.QueryRow(ctx, query,
		input.Name,
		input.Email,
		input.Phone,
		input.Subject,
		input.Message,
	)
	if err := row.Scan(&contact.ID, &contact.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	return contact, nil
}

func (s *ContactStore) ListContacts(ctx context.Context) ([]types.Contact, error) {
	query := `
		SELECT id, name, email, phone, subject, message, created_at
		FROM contacts
		ORDER BY created_at DESC, id DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]types.Contact, 0)
	for rows.Next() {
		var c types.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *ContactStore) DeleteContact(ctx context.Context, id int64) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete contact: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
