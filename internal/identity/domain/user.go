package domain

import (
	"errors"
	"time"
)

// Validation taxonomy. These are surfaced as user-facing messages, never as
// fatal failures.
var (
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrWeakPassword     = errors.New("password is too weak")
	ErrDuplicateEmail   = errors.New("user already exists with this email")
	ErrUserNotFound     = errors.New("no account found with this email")
	ErrWrongPassword    = errors.New("incorrect password")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// User represents one registered account. The password field holds whatever
// the configured verifier produced; with the default verifier that is the
// plaintext password, preserving the legacy storefront behavior. It must
// round-trip through persistence, hence no json:"-".
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the currently authenticated identity: a re-creatable
// projection of a User that never carries the password.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionOf projects a user into a session
func SessionOf(u *User) Session {
	return Session{ID: u.ID, Name: u.Name, Email: u.Email}
}

// ProfileUpdate carries the fields UpdateProfile may merge. Empty fields
// are left untouched.
type ProfileUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
