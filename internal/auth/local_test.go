package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/evcraddock/stayfinder/internal/storage"
)

func newTestLocal(t *testing.T) (*LocalAuthenticator, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore(storage.WithoutSeed())
	a, err := NewLocalAuthenticator(store, "test-secret")
	require.NoError(t, err)
	a.cost = bcrypt.MinCost
	return a, store
}

func TestNewLocalAuthenticatorRequiresSecret(t *testing.T) {
	_, err := NewLocalAuthenticator(storage.NewMemoryStore(), "")
	assert.Error(t, err)
}

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	a, store := newTestLocal(t)

	s, err := a.Signup(ctx, "Ana Lima", "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, s.Token)
	assert.Equal(t, "ana@example.com", s.User.Username)
	assert.Equal(t, "Ana Lima", s.User.Name)

	stored, err := store.GetUserByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password, "password must be hashed")

	login, err := a.Login(ctx, "ANA@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, s.User.ID, login.User.ID)

	me, err := a.Me(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", me.Email)
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestLocal(t)

	_, err := a.Signup(ctx, "Ana", "ana@example.com", "secret1")
	require.NoError(t, err)

	_, err = a.Signup(ctx, "Other", "Ana@Example.com", "secret2")
	assert.True(t, errors.Is(err, ErrAccountExists))
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestLocal(t)

	_, err := a.Signup(ctx, "Ana", "ana@example.com", "secret1")
	require.NoError(t, err)

	_, err = a.Login(ctx, "ana@example.com", "wrong-password")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	_, err = a.Login(ctx, "nobody@example.com", "secret1")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestMeRejectsBadTokens(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestLocal(t)

	s, err := a.Signup(ctx, "Ana", "ana@example.com", "secret1")
	require.NoError(t, err)

	other, err := NewLocalAuthenticator(storage.NewMemoryStore(), "other-secret")
	require.NoError(t, err)
	forged, err := other.session(s.User)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "1"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	ghostUser := s.User
	ghostUser.ID = 999
	ghost, err := a.session(ghostUser)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"wrong secret", forged.Token},
		{"alg none", unsigned},
		{"unknown user", ghost.Token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Me(ctx, tt.token)
			assert.True(t, errors.Is(err, ErrInvalidToken), "got %v", err)
		})
	}
}

func TestTokenExpiry(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestLocal(t)

	issued := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return issued }

	s, err := a.Signup(ctx, "Ana", "ana@example.com", "secret1")
	require.NoError(t, err)

	a.now = func() time.Time { return issued.Add(23 * time.Hour) }
	_, err = a.Me(ctx, s.Token)
	require.NoError(t, err)

	a.now = func() time.Time { return issued.Add(25 * time.Hour) }
	_, err = a.Me(ctx, s.Token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
