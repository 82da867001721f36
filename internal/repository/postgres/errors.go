// Package postgres implements the user and contact repositories on a pgx pool.
package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"go-contacts-api/internal/model"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, model.ErrStorageUnavailable, err)
}
