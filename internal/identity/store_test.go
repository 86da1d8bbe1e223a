package identity

import (
	"context"
	"testing"

	"github.com/sportshop/storefront/internal/identity/domain"
	"github.com/sportshop/storefront/pkg/auth"
	"github.com/sportshop/storefront/pkg/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(context.Background(), kvstore.NewMemoryStore(), auth.PlainVerifier{})
}

func TestSignupEstablishesSession(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	session, err := s.Signup(ctx, "Alice", "alice@example.com", "Abcdef1!")
	require.NoError(t, err)

	assert.Equal(t, "Alice", session.Name)
	assert.Equal(t, "alice@example.com", session.Email)
	assert.NotEmpty(t, session.ID)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, 1, s.UserCount())
}

func TestSignupInvalidEmailLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Signup(ctx, "Alice", "bad-email", "Abcdef1!")
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	assert.Zero(t, s.UserCount())
	assert.False(t, s.IsAuthenticated())
}

func TestSignupWeakPassword(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Signup(ctx, "Alice", "alice@example.com", "short")
	assert.ErrorIs(t, err, domain.ErrWeakPassword)
	assert.Zero(t, s.UserCount())
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Signup(ctx, "Alice", "alice@example.com", "Abcdef1!")
	require.NoError(t, err)

	_, err = s.Signup(ctx, "Other", "alice@example.com", "Abcdef1!")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.Equal(t, 1, s.UserCount())
}

func TestLoginRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Signup(ctx, "Alice", "alice@example.com", "Abcdef1!")
	require.NoError(t, err)
	s.Logout(ctx)
	require.False(t, s.IsAuthenticated())

	session, err := s.Login(ctx, "alice@example.com", "Abcdef1!")
	require.NoError(t, err)
	assert.Equal(t, "Alice", session.Name)
	assert.True(t, s.IsAuthenticated())
}

func TestLoginFailuresLeaveSessionAnonymous(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Signup(ctx, "Alice", "alice@example.com", "Abcdef1!")
	require.NoError(t, err)
	s.Logout(ctx)

	_, err = s.Login(ctx, "not-an-email", "Abcdef1!")
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = s.Login(ctx, "nobody@example.com", "Abcdef1!")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = s.Login(ctx, "alice@example.com", "wrong-pass")
	assert.ErrorIs(t, err, domain.ErrWrongPassword)

	assert.False(t, s.IsAuthenticated(), "failed logins must not establish a session")
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Logout(ctx)
	assert.False(t, s.IsAuthenticated())

	_, err := s.Signup(ctx, "Alice", "alice@example.com", "Abcdef1!")
	require.NoError(t, err)
	s.Logout(ctx)
	s.Logout(ctx)
	assert.False(t, s.IsAuthenticated())
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Signup(ctx, "Alice", "alice@example.com", "Abcdef1!")
	require.NoError(t, err)

	session, err := s.UpdateProfile(ctx, domain.ProfileUpdate{Name: "Alicia"})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", session.Name)
	assert.Equal(t, "alice@example.com", session.Email, "empty fields keep their value")

	session, err = s.UpdateProfile(ctx, domain.ProfileUpdate{Email: "alicia@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", session.Name)
	assert.Equal(t, "alicia@example.com", session.Email)
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.UpdateProfile(ctx, domain.ProfileUpdate{Name: "Nobody"})
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestStoreRestoresUsersAndSession(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()

	s := NewStore(ctx, kv, auth.PlainVerifier{})
	_, err := s.Signup(ctx, "Alice", "alice@example.com", "Abcdef1!")
	require.NoError(t, err)

	restored := NewStore(ctx, kv, auth.PlainVerifier{})
	assert.Equal(t, 1, restored.UserCount())
	require.True(t, restored.IsAuthenticated())
	assert.Equal(t, "alice@example.com", restored.Session().Email)

	restored.Logout(ctx)
	again := NewStore(ctx, kv, auth.PlainVerifier{})
	assert.False(t, again.IsAuthenticated(), "logout clears the persisted session slot")
}

func TestBcryptVerifierPath(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, kvstore.NewMemoryStore(), auth.BcryptVerifier{})

	_, err := s.Signup(ctx, "Alice", "alice@example.com", "Abcdef1!")
	require.NoError(t, err)
	s.Logout(ctx)

	_, err = s.Login(ctx, "alice@example.com", "Abcdef1!")
	assert.NoError(t, err)

	_, err = s.Login(ctx, "alice@example.com", "not-the-password")
	assert.ErrorIs(t, err, domain.ErrWrongPassword)
}
