package model

import "errors"

var (
	// Credential errors
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// Token errors
	ErrTokenMissing = errors.New("missing token")
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Contact errors
	ErrContactNotFound = errors.New("contact not found")
	ErrDuplicateEmail  = errors.New("contact email already exists")

	ErrStorageUnavailable = errors.New("storage unavailable")
)
