// Package sqlite implements the user and contact repositories on database/sql
// with the modernc SQLite driver.
package sqlite

import (
	"fmt"
	"strings"

	"go-contacts-api/internal/model"
)

func isUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed: "+column)
}

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, model.ErrStorageUnavailable, err)
}
