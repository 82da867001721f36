package handler

import (
	"context"
	"net/http"

	"go-contacts-api/internal/model"
	"go-contacts-api/internal/validation"
)

const missingCredentials = "username and password are required"

type authService interface {
	Register(ctx context.Context, username string, password string) (model.User, error)
	Login(ctx context.Context, username string, password string) (string, error)
}

type AuthHandler struct {
	service authService
}

func NewAuthHandler(service authService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload model.RegisterRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.Struct(payload, missingCredentials); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.service.Register(r.Context(), payload.Username, payload.Password); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, http.StatusCreated, "User registered successfully")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload model.LoginRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.Struct(payload, missingCredentials); err != nil {
		writeError(w, r, err)
		return
	}

	signed, err := h.service.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{Token: signed, Message: "Logged in successfully"})
}

// Logout only acknowledges: tokens are stateless and the client discards its own.
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "Logged out successfully")
}
