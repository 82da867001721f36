// Package password holds the password strength policy applied before a
// password is hashed and stored.
package password

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinLength = 8
	// MaxBytes is the bcrypt input limit; longer input would be silently truncated.
	MaxBytes = 72
	// SpecialCharacters is the set a password must draw at least one character from.
	SpecialCharacters = "!@#$%^&.*"
)

var (
	ErrTooShort  = errors.New("password must be at least 8 characters long")
	ErrNoUpper   = errors.New("password must contain at least one uppercase letter")
	ErrNoLower   = errors.New("password must contain at least one lowercase letter")
	ErrNoDigit   = errors.New("password must contain at least one digit")
	ErrNoSpecial = errors.New("password must contain at least one special character (! @ # $ % ^ & . *)")
	ErrTooLong   = errors.New("password must be at most 72 bytes long")
)

// Validate checks the rules in order and returns the first one that fails.
func Validate(password string) error {
	if utf8.RuneCountInString(password) < MinLength {
		return ErrTooShort
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		return ErrNoUpper
	}
	if !strings.ContainsFunc(password, unicode.IsLower) {
		return ErrNoLower
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return ErrNoDigit
	}
	if !strings.ContainsAny(password, SpecialCharacters) {
		return ErrNoSpecial
	}
	if len(password) > MaxBytes {
		return ErrTooLong
	}

	return nil
}
