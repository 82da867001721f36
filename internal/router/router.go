package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-contacts-api/internal/config"
	"go-contacts-api/internal/handler"
	"go-contacts-api/internal/middleware"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Contact *handler.ContactHandler
	Health  *handler.HealthHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", h.Health.Check)

	r.Post("/register", h.Auth.Register)
	r.Post("/login", h.Auth.Login)
	r.Post("/logout", h.Auth.Logout)

	r.Group(func(protected chi.Router) {
		protected.Use(authMiddleware.RequireAuth)

		protected.Get("/contacts", h.Contact.List)
		protected.Post("/create_contact", h.Contact.Create)
		protected.Patch("/update_contact/{id}", h.Contact.Update)
		protected.Delete("/delete_contact/{id}", h.Contact.Delete)
	})

	return r
}
