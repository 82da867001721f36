package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go-contacts-api/internal/model"
)

type tokenVerifier interface {
	Verify(tokenString string) (model.TokenClaims, error)
}

type userResolver interface {
	ResolveUser(ctx context.Context, userID int64) (model.Identity, error)
}

type contextKey string

const identityContextKey contextKey = "identity"

// AuthMiddleware gates protected routes. Every request is authenticated on
// its own: the bearer token is verified and its subject looked up again.
type AuthMiddleware struct {
	verifier tokenVerifier
	users    userResolver
}

func NewAuthMiddleware(verifier tokenVerifier, users userResolver) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, users: users}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "MISSING_TOKEN", "Missing Token")
			return
		}

		claims, err := m.verifier.Verify(raw)
		switch {
		case errors.Is(err, model.ErrTokenExpired):
			writeJSONError(w, http.StatusUnauthorized, "TOKEN_EXPIRED", "Token Expired")
			return
		case err != nil:
			writeJSONError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid Token")
			return
		}

		identity, err := m.users.ResolveUser(r.Context(), claims.UserID)
		if errors.Is(err, model.ErrUserNotFound) {
			writeJSONError(w, http.StatusUnauthorized, "USER_NOT_FOUND", "User Not Found")
			return
		}
		if err != nil {
			slog.Error("resolve token subject", "user_id", claims.UserID, "error", err)
			writeJSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected server error")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(model.Identity)
	return identity, ok
}

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// bearerToken extracts the credential from an "Authorization: Bearer <token>"
// header. The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, value, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}
