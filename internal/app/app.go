package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-contacts-api/internal/config"
	"go-contacts-api/internal/handler"
	"go-contacts-api/internal/middleware"
	"go-contacts-api/internal/router"
	"go-contacts-api/internal/service"
	"go-contacts-api/internal/token"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	server *http.Server
	store  *Store
}

func New(cfg *config.Config) (*App, error) {
	store, err := OpenStore(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("database ready", "driver", cfg.DatabaseDriver)

	appRouter, err := NewHandler(cfg, store)
	if err != nil {
		store.Close()
		return nil, err
	}

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{server: server, store: store}, nil
}

// NewHandler wires services, middleware and handlers on top of store.
func NewHandler(cfg *config.Config, store *Store) (http.Handler, error) {
	tokens, err := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token manager: %w", err)
	}

	authService, err := service.NewAuthService(store.Users, tokens, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	contactService := service.NewContactService(store.Contacts)

	return router.New(cfg, middleware.NewAuthMiddleware(tokens, authService), router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Contact: handler.NewContactHandler(contactService),
		Health:  handler.NewHealthHandler(store),
	}), nil
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests and closes
// the database.
func (a *App) Run() error {
	defer a.store.Close()

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-stop:
		slog.Info("shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
