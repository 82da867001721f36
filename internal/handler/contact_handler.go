package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"go-contacts-api/internal/middleware"
	"go-contacts-api/internal/model"
)

type contactService interface {
	List(ctx context.Context) ([]model.Contact, error)
	Create(ctx context.Context, req model.CreateContactRequest) (model.Contact, error)
	Update(ctx context.Context, id int64, req model.UpdateContactRequest) (model.Contact, error)
	Delete(ctx context.Context, id int64) error
}

type ContactHandler struct {
	service contactService
}

func NewContactHandler(service contactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ContactList{Contacts: contacts})
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.CreateContactRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	contact, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	identity, _ := middleware.IdentityFromContext(r.Context())
	slog.Info("contact created", "contact_id", contact.ID, "user_id", identity.UserID)

	writeMessage(w, http.StatusCreated, "Contact created!")
}

func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(r)
	if !ok {
		writeError(w, r, model.ErrContactNotFound)
		return
	}

	var payload model.UpdateContactRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.service.Update(r.Context(), id, payload); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "Contact updated.")
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(r)
	if !ok {
		writeError(w, r, model.ErrContactNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	identity, _ := middleware.IdentityFromContext(r.Context())
	slog.Info("contact deleted", "contact_id", id, "user_id", identity.UserID)

	writeMessage(w, http.StatusOK, "Contact deleted!")
}

// contactID parses the {id} path segment; anything that is not a positive
// int64 cannot name a contact.
func contactID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
