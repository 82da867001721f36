package model

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated caller attached to a request context.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type TokenClaims struct {
	UserID    int64
	ExpiresAt time.Time
}
