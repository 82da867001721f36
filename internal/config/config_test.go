package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, time.Hour, cfg.JWTTTL)
	require.Equal(t, 12, cfg.BcryptCost)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "   ")

	_, err := Load()
	require.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadPostgresNeedsURL(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost/contacts")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DriverPostgres, cfg.DatabaseDriver)
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func() Config {
		return Config{
			ServerPort:     "8080",
			RequestTimeout: time.Second,
			DatabaseDriver: DriverSQLite,
			SQLitePath:     ":memory:",
			JWTSecret:      "x",
			JWTTTL:         time.Hour,
			BcryptCost:     10,
		}
	}

	cfg := base()
	require.NoError(t, cfg.Validate())

	cfg = base()
	cfg.BcryptCost = 3
	require.Error(t, cfg.Validate())

	cfg = base()
	cfg.DatabaseDriver = "mysql"
	require.Error(t, cfg.Validate())

	cfg = base()
	cfg.JWTTTL = 0
	require.Error(t, cfg.Validate())
}

func TestSplitCSV(t *testing.T) {
	require.Nil(t, splitCSV("  "))
	require.Equal(t, []string{"a", "b"}, splitCSV(" a, ,b ,"))
}
