package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-contacts-api/internal/model"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) List(ctx context.Context) ([]model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, first_name, last_name, email FROM contacts ORDER BY id`)
	if err != nil {
		return nil, storageError("list contacts", err)
	}
	defer rows.Close()

	contacts := make([]model.Contact, 0)
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email); err != nil {
			return nil, storageError("scan contact", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list contacts", err)
	}
	return contacts, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id int64) (model.Contact, error) {
	var c model.Contact
	err := r.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, email FROM contacts WHERE id = $1`, id).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Contact{}, model.ErrContactNotFound
	}
	if err != nil {
		return model.Contact{}, storageError("find contact", err)
	}
	return c, nil
}

func (r *ContactRepository) Create(ctx context.Context, c *model.Contact) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contacts (first_name, last_name, email)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		c.FirstName, c.LastName, c.Email).Scan(&c.ID)
	if isUniqueViolation(err, "contacts_email_key") {
		return model.ErrDuplicateEmail
	}
	if err != nil {
		return storageError("create contact", err)
	}
	return nil
}

func (r *ContactRepository) Update(ctx context.Context, c model.Contact) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contacts SET first_name = $2, last_name = $3, email = $4 WHERE id = $1`,
		c.ID, c.FirstName, c.LastName, c.Email)
	if isUniqueViolation(err, "contacts_email_key") {
		return model.ErrDuplicateEmail
	}
	if err != nil {
		return storageError("update contact", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrContactNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return storageError("delete contact", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrContactNotFound
	}
	return nil
}
