package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"go-contacts-api/internal/model"
	"go-contacts-api/internal/password"
	"go-contacts-api/pkg/apierror"
)

const maxUsernameLength = 80

type userStore interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	Create(ctx context.Context, u *model.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type tokenIssuer interface {
	Issue(userID int64) (string, error)
}

// AuthService is the credential store: it registers users with a bcrypt hash,
// verifies login attempts and resolves token subjects back to users.
type AuthService struct {
	users      userStore
	tokens     tokenIssuer
	bcryptCost int
	// dummyHash is compared against when the username is unknown so both
	// failure paths spend the same bcrypt time.
	dummyHash []byte
}

func NewAuthService(users userStore, tokens tokenIssuer, bcryptCost int) (*AuthService, error) {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range", bcryptCost)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("unused-dummy-password"), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("generate dummy hash: %w", err)
	}

	return &AuthService{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		dummyHash:  dummy,
	}, nil
}

// Register validates the credentials and stores a new user. A taken username
// yields model.ErrDuplicateUsername; the decision is made by the storage
// layer's unique index, not by a prior lookup.
func (s *AuthService) Register(ctx context.Context, username string, rawPassword string) (model.User, error) {
	username, err := s.checkCredentials(username, rawPassword)
	if err != nil {
		return model.User{}, err
	}

	hash, err := s.hash(rawPassword)
	if err != nil {
		return model.User{}, err
	}

	now := time.Now().UTC()
	user := model.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, &user); err != nil {
		return model.User{}, err
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Verify returns the user whose credentials match. Unknown usernames and
// wrong passwords both return model.ErrInvalidCredentials.
func (s *AuthService) Verify(ctx context.Context, username string, rawPassword string) (model.User, error) {
	username = strings.TrimSpace(username)

	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, model.ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(rawPassword))
		slog.Info("login rejected", "reason", "unknown username", "username", username)
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(rawPassword)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			slog.Warn("stored password hash unusable", "user_id", user.ID, "error", err)
		}
		slog.Info("login rejected", "reason", "password mismatch", "username", username, "user_id", user.ID)
		return model.User{}, model.ErrInvalidCredentials
	}

	return user, nil
}

// Login verifies the credentials and mints a bearer token for the user.
func (s *AuthService) Login(ctx context.Context, username string, rawPassword string) (string, error) {
	user, err := s.Verify(ctx, username, rawPassword)
	if err != nil {
		return "", err
	}

	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)
	return signed, nil
}

// ResolveUser looks up the subject of a verified token.
func (s *AuthService) ResolveUser(ctx context.Context, userID int64) (model.Identity, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return model.Identity{}, err
	}
	return model.Identity{UserID: user.ID, Username: user.Username}, nil
}

// EnsureUser creates username, or resets its password when it already
// exists. The boolean reports whether a new user was created.
func (s *AuthService) EnsureUser(ctx context.Context, username string, rawPassword string) (model.User, bool, error) {
	username, err := s.checkCredentials(username, rawPassword)
	if err != nil {
		return model.User{}, false, err
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, model.ErrUserNotFound) {
		user, err := s.Register(ctx, username, rawPassword)
		return user, err == nil, err
	}
	if err != nil {
		return model.User{}, false, err
	}

	hash, err := s.hash(rawPassword)
	if err != nil {
		return model.User{}, false, err
	}
	if err := s.users.UpdatePassword(ctx, existing.ID, hash); err != nil {
		return model.User{}, false, err
	}

	existing.PasswordHash = hash
	slog.Info("user password reset", "user_id", existing.ID, "username", existing.Username)
	return existing, false, nil
}

func (s *AuthService) checkCredentials(username string, rawPassword string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || rawPassword == "" {
		return "", apierror.BadRequest("username and password are required", "")
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return "", apierror.BadRequest(fmt.Sprintf("username must be at most %d characters", maxUsernameLength), "username")
	}
	if err := password.Validate(rawPassword); err != nil {
		return "", apierror.WeakPassword(err.Error())
	}
	return username, nil
}

func (s *AuthService) hash(rawPassword string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
