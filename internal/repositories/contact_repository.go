package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/diarhyseni/real-estateapp/internal/models"
)

var (
	ErrContactNotFound = models.ErrContactNotFound
)

type ContactRepository struct {
	DB *sql.DB
}

func (r *ContactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	contact.CreatedAt = time.Now()
	query := `
		INSERT INTO contacts (id, first_name, last_name, email, phone, message, source, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.DB.ExecContext(ctx, query,
		contact.ID, contact.FirstName, contact.LastName, contact.Email,
		contact.Phone, contact.Message, contact.Source, contact.Status, contact.CreatedAt,
	)
	if err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

func (r *ContactRepository) GetContactByID(ctx context.Context, id string) (models.Contact, error) {
	var (
		contact models.Contact
		source  sql.NullString
	)
	query := `
		SELECT id, first_name, last_name, email, phone, message, source, status, created_at
		FROM contacts
		WHERE id = ?
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&contact.ID, &contact.FirstName, &contact.LastName, &contact.Email,
		&contact.Phone, &contact.Message, &source, &contact.Status, &contact.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Contact{}, ErrContactNotFound
		}
		return models.Contact{}, err
	}
	contact.Source = source.String
	return contact, nil
}

func (r *ContactRepository) GetAllContacts(ctx context.Context) ([]models.Contact, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, message, source, status, created_at
		FROM contacts
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var (
			c      models.Contact
			source sql.NullString
		)
		if err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.Email,
			&c.Phone, &c.Message, &source, &c.Status, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		c.Source = source.String
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *ContactRepository) UpdateContactStatus(ctx context.Context, id, status string) (models.Contact, error) {
	result, err := r.DB.ExecContext(ctx, `UPDATE contacts SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return models.Contact{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Contact{}, err
	}
	if rowsAffected == 0 {
		return models.Contact{}, ErrContactNotFound
	}
	return r.GetContactByID(ctx, id)
}

func (r *ContactRepository) DeleteContact(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}
