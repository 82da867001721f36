package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"go-contacts-api/internal/middleware"
	"go-contacts-api/internal/model"
	"go-contacts-api/pkg/apierror"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.MessageResponse{Message: message})
}

// writeError renders err. Expected failures map to 4xx with their own
// message; everything else is logged and answered with a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	body := model.APIError{
		Code:    "INTERNAL_ERROR",
		Message: "Unexpected server error",
	}

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
		body.Details = apiErr.Details
	case errors.Is(err, model.ErrDuplicateUsername):
		status = http.StatusBadRequest
		body.Code = "DUPLICATE_USERNAME"
		body.Message = "Username already exists"
	case errors.Is(err, model.ErrDuplicateEmail):
		status = http.StatusBadRequest
		body.Code = "DUPLICATE_EMAIL"
		body.Message = "A contact with this email already exists"
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		body.Code = "INVALID_CREDENTIALS"
		body.Message = "Invalid credentials"
	case errors.Is(err, model.ErrTokenMissing):
		status = http.StatusUnauthorized
		body.Code = "MISSING_TOKEN"
		body.Message = "Missing Token"
	case errors.Is(err, model.ErrTokenExpired):
		status = http.StatusUnauthorized
		body.Code = "TOKEN_EXPIRED"
		body.Message = "Token Expired"
	case errors.Is(err, model.ErrTokenInvalid):
		status = http.StatusUnauthorized
		body.Code = "INVALID_TOKEN"
		body.Message = "Invalid Token"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusUnauthorized
		body.Code = "USER_NOT_FOUND"
		body.Message = "User Not Found"
	case errors.Is(err, model.ErrContactNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Contact not found"
	default:
		slog.Error("request failed",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error())
	}

	writeJSON(w, status, body)
}

// decodeJSON reads the request body into dst. An empty body leaves dst at
// its zero value so that missing-field validation reports it.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	defer r.Body.Close()

	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apierror.New("PAYLOAD_TOO_LARGE", "request body too large", "", http.StatusRequestEntityTooLarge)
	}
	return apierror.BadRequest("invalid JSON body", "")
}

func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, model.APIError{Code: "NOT_FOUND", Message: "Resource not found"})
}

func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, model.APIError{Code: "METHOD_NOT_ALLOWED", Message: "Method not allowed"})
}
