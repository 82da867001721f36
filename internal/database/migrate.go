package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// EnsureSchema applies the embedded postgres migrations over the pool.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if db == nil || db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	conn := stdlib.OpenDBFromPool(db.Pool)
	defer conn.Close()

	return migrate(ctx, conn, goose.DialectPostgres, "migrations/postgres")
}

// EnsureSchema applies the embedded sqlite migrations.
func (db *SQLiteDB) EnsureSchema(ctx context.Context) error {
	if db == nil || db.Conn == nil {
		return fmt.Errorf("sqlite connection is not initialized")
	}

	return migrate(ctx, db.Conn, goose.DialectSQLite3, "migrations/sqlite")
}

func migrate(ctx context.Context, conn *sql.DB, dialect goose.Dialect, dir string) error {
	fsys, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("open migrations %s: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, conn, fsys)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, res := range results {
		slog.Info("migration applied", "version", res.Source.Version, "duration", res.Duration)
	}
	slog.Info("database schema ensured", "dialect", string(dialect))
	return nil
}
