package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-contacts-api/internal/model"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at, updated_at
		 FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, storageError("find user by id", err)
	}
	return u, nil
}

// FindByUsername matches case-insensitively through the column's NOCASE collation.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at, updated_at
		 FROM users WHERE username = ?`, strings.TrimSpace(username)).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, storageError("find user by username", err)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?)`,
		u.Username, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	if isUniqueViolation(err, "users.username") {
		return model.ErrDuplicateUsername
	}
	if err != nil {
		return storageError("create user", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return storageError("create user", err)
	}
	u.ID = id
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		passwordHash, time.Now().UTC(), id)
	if err != nil {
		return storageError("update password", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return storageError("update password", err)
	}
	if rows == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
