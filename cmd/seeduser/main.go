// Command seeduser creates a user, or resets its password when the username
// is already taken. It reads the same environment as the server.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"go-contacts-api/internal/app"
	"go-contacts-api/internal/config"
	"go-contacts-api/internal/logger"
	"go-contacts-api/internal/service"
	"go-contacts-api/internal/token"
)

func main() {
	username := flag.String("username", "demo_user", "username to create or reset")
	password := flag.String("password", "", "password to set (required)")
	flag.Parse()

	slog.SetDefault(logger.New(os.Stderr, "info", "pretty"))

	if *password == "" {
		slog.Error("-password is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, cfg, *username, *password); err != nil {
		slog.Error("seed user failed", "username", *username, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, username string, password string) error {
	store, err := app.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	tokens, err := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return err
	}
	auth, err := service.NewAuthService(store.Users, tokens, cfg.BcryptCost)
	if err != nil {
		return err
	}

	user, created, err := auth.EnsureUser(ctx, username, password)
	if err != nil {
		return err
	}

	if created {
		slog.Info("user created", "username", user.Username, "user_id", user.ID)
	} else {
		slog.Info("password reset", "username", user.Username, "user_id", user.ID)
	}
	return nil
}
