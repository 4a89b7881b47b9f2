package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/evcraddock/stayfinder/internal/storage"
	"github.com/evcraddock/stayfinder/internal/user"
)

const tokenExpiry = 24 * time.Hour

// LocalAuthenticator keeps accounts in a storage.Store with bcrypt password
// hashes and issues HS256 tokens.
type LocalAuthenticator struct {
	store  storage.Store
	secret []byte
	now    func() time.Time
	cost   int
}

// NewLocalAuthenticator creates an authenticator that signs tokens with
// secret.
func NewLocalAuthenticator(store storage.Store, secret string) (*LocalAuthenticator, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret is required")
	}
	return &LocalAuthenticator{
		store:  store,
		secret: []byte(secret),
		now:    time.Now,
		cost:   bcrypt.DefaultCost,
	}, nil
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Login checks the password against the stored hash.
func (a *LocalAuthenticator) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := a.store.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a.session(*u)
}

// Signup creates an account whose username is the email address.
func (a *LocalAuthenticator) Signup(ctx context.Context, name, email, password string) (*Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u, err := a.store.CreateUser(ctx, user.NewUser{
		Username: email,
		Email:    email,
		Password: string(hash),
		Name:     name,
	})
	if errors.Is(err, storage.ErrConflict) {
		return nil, ErrAccountExists
	}
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return a.session(*u)
}

// Me resolves a token issued by this authenticator.
func (a *LocalAuthenticator) Me(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	c := &claims{}
	_, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, c.Subject)
	}

	u, err := a.store.GetUser(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: unknown user %d", ErrInvalidToken, id)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	return u, nil
}

func (a *LocalAuthenticator) session(u user.User) (*Session, error) {
	now := a.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenExpiry)),
		},
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}
	return &Session{User: u, Token: signed}, nil
}
