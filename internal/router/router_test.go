package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"go-contacts-api/internal/config"
	"go-contacts-api/internal/database"
	"go-contacts-api/internal/handler"
	"go-contacts-api/internal/middleware"
	"go-contacts-api/internal/model"
	"go-contacts-api/internal/repository/sqlite"
	"go-contacts-api/internal/service"
	"go-contacts-api/internal/token"
)

const testSecret = "router-test-secret"

type testServer struct {
	handler http.Handler
	db      *database.SQLiteDB
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "router.db"))
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.EnsureSchema(ctx))

	tokens, err := token.NewManager(testSecret, time.Hour)
	require.NoError(t, err)

	authService, err := service.NewAuthService(sqlite.NewUserRepository(db.Conn), tokens, bcrypt.MinCost)
	require.NoError(t, err)
	contactService := service.NewContactService(sqlite.NewContactRepository(db.Conn))

	cfg := &config.Config{
		RequestTimeout: 5 * time.Second,
		CORSOrigins:    []string{"http://localhost:5173"},
	}

	h := New(cfg, middleware.NewAuthMiddleware(tokens, authService), Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Contact: handler.NewContactHandler(contactService),
		Health:  handler.NewHealthHandler(db),
	})

	return testServer{handler: h, db: db}
}

func (s testServer) do(t *testing.T, method string, path string, body string, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s testServer) login(t *testing.T, username string, password string) string {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/register", `{"username":"`+username+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/login", `{"username":"`+username+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp model.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body model.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Message
}

func TestAuthFlow(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/register", `{"username":"alice","password":"Str0ng!pw"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.do(t, http.MethodPost, "/register", `{"username":"ALICE","password":"Str0ng!pw"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username already exists", errorMessage(t, rec))

	rec = srv.do(t, http.MethodPost, "/register", `{"username":"bob","password":"weakpass"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/login", `{"username":"alice","password":"Wr0ng!pw"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", errorMessage(t, rec))

	rec = srv.do(t, http.MethodPost, "/login", `{"username":"nobody","password":"Str0ng!pw"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", errorMessage(t, rec))

	rec = srv.do(t, http.MethodPost, "/login", `{"username":"alice","password":"Str0ng!pw"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Logged in successfully", resp.Message)

	rec = srv.do(t, http.MethodGet, "/contacts", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Missing Token", errorMessage(t, rec))

	rec = srv.do(t, http.MethodGet, "/contacts", "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid Token", errorMessage(t, rec))

	rec = srv.do(t, http.MethodGet, "/contacts", "", resp.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"contacts":[]}`, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/logout", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExpiredToken(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	srv.login(t, "carol", "Str0ng!pw")

	past, err := token.NewManager(testSecret, time.Minute, token.WithClock(func() time.Time {
		return time.Now().Add(-2 * time.Hour)
	}))
	require.NoError(t, err)
	stale, err := past.Issue(1)
	require.NoError(t, err)

	rec := srv.do(t, http.MethodGet, "/contacts", "", stale)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token Expired", errorMessage(t, rec))
}

func TestDeletedUserToken(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	signed := srv.login(t, "dave", "Str0ng!pw")

	_, err := srv.db.Conn.ExecContext(context.Background(), `DELETE FROM users WHERE username = ?`, "dave")
	require.NoError(t, err)

	rec := srv.do(t, http.MethodGet, "/contacts", "", signed)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "User Not Found", errorMessage(t, rec))
}

func TestContactCRUD(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	signed := srv.login(t, "erin", "Str0ng!pw")

	rec := srv.do(t, http.MethodPost, "/create_contact", `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodPost, "/create_contact", `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`, signed)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/create_contact", `{"firstName":"Ada"}`, signed)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "You must include a first name, last name and email", errorMessage(t, rec))

	rec = srv.do(t, http.MethodPost, "/create_contact", `{"firstName":"A","lastName":"L","email":"ADA@example.com"}`, signed)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/contacts", "", signed)
	require.Equal(t, http.StatusOK, rec.Code)
	var list model.ContactList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list.Contacts, 1)
	created := list.Contacts[0]
	assert.Equal(t, "Ada", created.FirstName)

	id := strconv.FormatInt(created.ID, 10)

	rec = srv.do(t, http.MethodPatch, "/update_contact/"+id, `{"email":"countess@example.com"}`, signed)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/contacts", "", signed)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list.Contacts, 1)
	assert.Equal(t, "countess@example.com", list.Contacts[0].Email)
	assert.Equal(t, "Lovelace", list.Contacts[0].LastName)

	rec = srv.do(t, http.MethodPatch, "/update_contact/9999", `{"email":"x@example.com"}`, signed)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodDelete, "/delete_contact/"+id, "", signed)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodDelete, "/delete_contact/"+id, "", signed)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutingFallbacks(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodGet, "/login", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = srv.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
