package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-contacts-api/internal/database"
	"go-contacts-api/internal/model"
)

func setupTestDB(t *testing.T) *database.SQLiteDB {
	t.Helper()

	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.EnsureSchema(ctx))
	return db
}

func newUser(username string) *model.User {
	now := time.Now().UTC().Truncate(time.Second)
	return &model.User{Username: username, PasswordHash: "hash", CreatedAt: now, UpdatedAt: now}
}

func TestUserRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t).Conn)

	alice := newUser("alice")
	require.NoError(t, repo.Create(ctx, alice))
	require.NotZero(t, alice.ID)

	byName, err := repo.FindByUsername(ctx, "  ALICE ")
	require.NoError(t, err)
	require.Equal(t, alice.ID, byName.ID)
	require.Equal(t, "alice", byName.Username)
	require.Equal(t, "hash", byName.PasswordHash)

	byID, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)

	require.ErrorIs(t, repo.Create(ctx, newUser("Alice")), model.ErrDuplicateUsername)

	_, err = repo.FindByUsername(ctx, "bob")
	require.ErrorIs(t, err, model.ErrUserNotFound)
	_, err = repo.FindByID(ctx, alice.ID+100)
	require.ErrorIs(t, err, model.ErrUserNotFound)

	require.NoError(t, repo.UpdatePassword(ctx, alice.ID, "new-hash"))
	byID, err = repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "new-hash", byID.PasswordHash)
	require.ErrorIs(t, repo.UpdatePassword(ctx, alice.ID+100, "x"), model.ErrUserNotFound)
}

func TestContactRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewContactRepository(setupTestDB(t).Conn)

	contacts, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, contacts)
	require.Empty(t, contacts)

	ada := &model.Contact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	require.NoError(t, repo.Create(ctx, ada))
	alan := &model.Contact{FirstName: "Alan", LastName: "Turing", Email: "alan@example.com"}
	require.NoError(t, repo.Create(ctx, alan))

	dup := &model.Contact{FirstName: "X", LastName: "Y", Email: "ADA@example.com"}
	require.ErrorIs(t, repo.Create(ctx, dup), model.ErrDuplicateEmail)

	contacts, err = repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Contact{*ada, *alan}, contacts)

	updated := *ada
	updated.LastName = "King"
	require.NoError(t, repo.Update(ctx, updated))
	got, err := repo.FindByID(ctx, ada.ID)
	require.NoError(t, err)
	require.Equal(t, "King", got.LastName)

	clash := *alan
	clash.Email = "ada@example.com"
	require.ErrorIs(t, repo.Update(ctx, clash), model.ErrDuplicateEmail)

	require.NoError(t, repo.Delete(ctx, ada.ID))
	require.ErrorIs(t, repo.Delete(ctx, ada.ID), model.ErrContactNotFound)
	_, err = repo.FindByID(ctx, ada.ID)
	require.ErrorIs(t, err, model.ErrContactNotFound)
	require.ErrorIs(t, repo.Update(ctx, updated), model.ErrContactNotFound)
}
