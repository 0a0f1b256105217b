package repository

import (
	"context"
	"fmt"

	"car-rental/internal/data/entity"
	"car-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	FindAll(ctx context.Context, status *string) ([]*entity.Contact, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ContactStatus) error
}

type contactRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContactRepository(db database.PgxIface, log *zap.Logger) ContactRepository {
	return &contactRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact")),
	}
}

const contactColumns = `id, name, email, phone, subject, message, status, created_at, updated_at`

func scanContact(row pgx.Row) (*entity.Contact, error) {
	var contact entity.Contact
	err := row.Scan(
		&contact.ID,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&contact.Subject,
		&contact.Message,
		&contact.Status,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, name, email, phone, subject, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		contact.ID,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Subject,
		contact.Message,
		contact.Status,
		contact.CreatedAt,
		contact.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create contact",
			zap.Error(err),
			zap.String("email", contact.Email),
		)
		return fmt.Errorf("create contact from %s: %w", contact.Email, err)
	}

	return nil
}

func (r *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	query := fmt.Sprintf(`SELECT %s FROM contacts WHERE id = $1`, contactColumns)

	contact, err := scanContact(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find contact by ID",
			zap.Error(err),
			zap.String("contact_id", id.String()),
		)
		return nil, fmt.Errorf("find contact by ID %s: %w", id.String(), err)
	}

	return contact, nil
}

func (r *contactRepository) FindAll(ctx context.Context, status *string) ([]*entity.Contact, error) {
	query := fmt.Sprintf(`SELECT %s FROM contacts`, contactColumns)
	var args []any

	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find contacts", zap.Error(err), zap.Stringp("status", status))
		return nil, fmt.Errorf("find contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*entity.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			r.log.Error("Failed to scan contact row", zap.Error(err))
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		contacts = append(contacts, contact)
	}

	return contacts, nil
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ContactStatus) error {
	query := `UPDATE contacts SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update contact status",
			zap.Error(err),
			zap.String("contact_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update contact %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact %s not found", id.String())
	}

	return nil
}
