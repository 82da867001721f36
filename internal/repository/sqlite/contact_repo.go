package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"go-contacts-api/internal/model"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) List(ctx context.Context) ([]model.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
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
	err := r.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, email FROM contacts WHERE id = ?`, id).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email)

	if errors.Is(err, sql.ErrNoRows) {
		return model.Contact{}, model.ErrContactNotFound
	}
	if err != nil {
		return model.Contact{}, storageError("find contact", err)
	}
	return c, nil
}

func (r *ContactRepository) Create(ctx context.Context, c *model.Contact) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO contacts (first_name, last_name, email) VALUES (?, ?, ?)`,
		c.FirstName, c.LastName, c.Email)
	if isUniqueViolation(err, "contacts.email") {
		return model.ErrDuplicateEmail
	}
	if err != nil {
		return storageError("create contact", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return storageError("create contact", err)
	}
	c.ID = id
	return nil
}

func (r *ContactRepository) Update(ctx context.Context, c model.Contact) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE contacts SET first_name = ?, last_name = ?, email = ? WHERE id = ?`,
		c.FirstName, c.LastName, c.Email, c.ID)
	if isUniqueViolation(err, "contacts.email") {
		return model.ErrDuplicateEmail
	}
	if err != nil {
		return storageError("update contact", err)
	}
	return requireRow(res, "update contact")
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return storageError("delete contact", err)
	}
	return requireRow(res, "delete contact")
}

func requireRow(res sql.Result, op string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return storageError(op, err)
	}
	if rows == 0 {
		return model.ErrContactNotFound
	}
	return nil
}
