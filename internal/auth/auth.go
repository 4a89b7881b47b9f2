// Package auth provides email/password login, signup and token lookup
// against whichever backend the server was started with.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/evcraddock/stayfinder/internal/user"
)

var (
	// ErrInvalidCredentials is returned when the email or password is wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountExists is returned by Signup when the email is taken.
	ErrAccountExists = errors.New("account already exists")
	// ErrInvalidToken is returned when a token is missing, malformed,
	// expired or names an unknown user.
	ErrInvalidToken = errors.New("invalid token")
)

// Session is an authenticated user and the bearer token issued for them.
type Session struct {
	User  user.User `json:"user"`
	Token string    `json:"token"`
}

// Authenticator logs users in, signs them up, and resolves tokens.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Signup(ctx context.Context, name, email, password string) (*Session, error)
	Me(ctx context.Context, token string) (*user.User, error)
}

// BearerToken returns the token from an "Authorization: Bearer" header, or
// "" if there is none.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

// RandomSecret returns a hex-encoded 32-byte secret for signing tokens when
// none is configured. Tokens signed with it do not survive a restart.
func RandomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
