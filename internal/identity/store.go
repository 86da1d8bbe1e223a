package identity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sportshop/storefront/internal/identity/domain"
	"github.com/sportshop/storefront/pkg/auth"
	"github.com/sportshop/storefront/pkg/kvstore"
)

// Blob keys for the registered users list and the session slot.
const (
	UsersKey   = "sportsShop_users"
	SessionKey = "sportsShop_user"
)

// Store owns the registered users list and the single session slot. The
// session moves anonymous -> authenticated on signup/login and back on
// logout. Password storage goes through the injected verifier so the
// scheme can be replaced without touching callers.
type Store struct {
	mu       sync.RWMutex
	users    []domain.User
	session  *domain.Session
	store    kvstore.Store
	verifier auth.PasswordVerifier
}

// NewStore restores persisted users and session, defaulting to an empty
// users list and an anonymous session
func NewStore(ctx context.Context, kv kvstore.Store, verifier auth.PasswordVerifier) *Store {
	s := &Store{
		users:    []domain.User{},
		store:    kv,
		verifier: verifier,
	}
	kvstore.LoadOrDefault(ctx, kv, UsersKey, &s.users)

	var session *domain.Session
	kvstore.LoadOrDefault(ctx, kv, SessionKey, &session)
	s.session = session
	return s
}

// Signup registers a new account and establishes its session
func (s *Store) Signup(ctx context.Context, name, email, password string) (*domain.Session, error) {
	if !domain.ValidEmail(email) {
		return nil, domain.ErrInvalidEmail
	}
	if ok, _ := domain.PasswordStrength(password); !ok {
		return nil, domain.ErrWeakPassword
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Email uniqueness is case-sensitive, matching the legacy behavior.
	for i := range s.users {
		if s.users[i].Email == email {
			return nil, domain.ErrDuplicateEmail
		}
	}

	stored, err := s.verifier.Hash(password)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		ID:        "user-" + uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  stored,
		CreatedAt: time.Now(),
	}
	s.users = append(s.users, user)

	session := domain.SessionOf(&user)
	s.session = &session

	kvstore.SaveBestEffort(ctx, s.store, UsersKey, s.users)
	kvstore.SaveBestEffort(ctx, s.store, SessionKey, s.session)

	cp := session
	return &cp, nil
}

// Login authenticates against the stored users list and establishes a
// session
func (s *Store) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if !domain.ValidEmail(email) {
		return nil, domain.ErrInvalidEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var user *domain.User
	for i := range s.users {
		if s.users[i].Email == email {
			user = &s.users[i]
			break
		}
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if !s.verifier.Verify(user.Password, password) {
		return nil, domain.ErrWrongPassword
	}

	session := domain.SessionOf(user)
	s.session = &session
	kvstore.SaveBestEffort(ctx, s.store, SessionKey, s.session)

	cp := session
	return &cp, nil
}

// Logout clears the session unconditionally; it always succeeds
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	kvstore.SaveBestEffort(ctx, s.store, SessionKey, nil)
}

// UpdateProfile merges non-empty fields into both the session and the
// matching user record
func (s *Store) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, domain.ErrNotAuthenticated
	}

	if update.Name != "" {
		s.session.Name = update.Name
	}
	if update.Email != "" {
		s.session.Email = update.Email
	}

	for i := range s.users {
		if s.users[i].ID == s.session.ID {
			if update.Name != "" {
				s.users[i].Name = update.Name
			}
			if update.Email != "" {
				s.users[i].Email = update.Email
			}
			break
		}
	}

	kvstore.SaveBestEffort(ctx, s.store, UsersKey, s.users)
	kvstore.SaveBestEffort(ctx, s.store, SessionKey, s.session)

	cp := *s.session
	return &cp, nil
}

// Session returns the current session, nil when anonymous
func (s *Store) Session() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}

// IsAuthenticated reports whether a session is established
func (s *Store) IsAuthenticated() bool {
	return s.Session() != nil
}

// UserCount returns the number of registered users
func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
