package app

import (
	"context"
	"fmt"
	"log/slog"

	"go-contacts-api/internal/config"
	"go-contacts-api/internal/database"
	"go-contacts-api/internal/model"
	"go-contacts-api/internal/repository/postgres"
	"go-contacts-api/internal/repository/sqlite"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	Create(ctx context.Context, u *model.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type ContactRepository interface {
	List(ctx context.Context) ([]model.Contact, error)
	FindByID(ctx context.Context, id int64) (model.Contact, error)
	Create(ctx context.Context, c *model.Contact) error
	Update(ctx context.Context, c model.Contact) error
	Delete(ctx context.Context, id int64) error
}

type dbConn interface {
	Health(ctx context.Context) error
	Close()
}

// Store bundles the repositories of whichever backend DATABASE_DRIVER selects.
type Store struct {
	Users    UserRepository
	Contacts ContactRepository
	db       dbConn
}

// OpenStore connects to the configured database and brings its schema up
// to date before returning.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		slog.Info("connecting to PostgreSQL")
		db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ensure database schema: %w", err)
		}
		return &Store{
			Users:    postgres.NewUserRepository(db.Pool),
			Contacts: postgres.NewContactRepository(db.Pool),
			db:       db,
		}, nil

	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ensure database schema: %w", err)
		}
		return &Store{
			Users:    sqlite.NewUserRepository(db.Conn),
			Contacts: sqlite.NewContactRepository(db.Conn),
			db:       db,
		}, nil
	}

	return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
}

func (s *Store) Health(ctx context.Context) error {
	return s.db.Health(ctx)
}

func (s *Store) Close() {
	s.db.Close()
}
