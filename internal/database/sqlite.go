package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

type SQLiteDB struct {
	Conn *sql.DB
}

// OpenSQLite opens (creating if needed) the SQLite file at path. ":memory:"
// is accepted. The pool is pinned to one connection: SQLite has a single
// writer and an in-memory database lives only as long as its connection.
func OpenSQLite(ctx context.Context, path string) (*SQLiteDB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	}
	for _, pragma := range pragmas {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("set pragma %q: %w", pragma, err)
		}
	}

	slog.Info("database connected", "driver", "sqlite", "path", path)
	return &SQLiteDB{Conn: conn}, nil
}

func (db *SQLiteDB) Close() {
	if db.Conn != nil {
		_ = db.Conn.Close()
	}
}

func (db *SQLiteDB) Health(ctx context.Context) error {
	return db.Conn.PingContext(ctx)
}
