package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"go-contacts-api/internal/database"
	"go-contacts-api/internal/repository/sqlite"
	"go-contacts-api/internal/token"
)

type testEnv struct {
	auth     *AuthService
	contacts *ContactService
	users    *sqlite.UserRepository
	tokens   *token.Manager
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "service.db"))
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.EnsureSchema(ctx))

	tokens, err := token.NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	users := sqlite.NewUserRepository(db.Conn)
	auth, err := NewAuthService(users, tokens, bcrypt.MinCost)
	require.NoError(t, err)

	return testEnv{
		auth:     auth,
		contacts: NewContactService(sqlite.NewContactRepository(db.Conn)),
		users:    users,
		tokens:   tokens,
	}
}
