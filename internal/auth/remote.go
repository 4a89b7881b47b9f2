package auth

import (
	"context"
	"fmt"

	"github.com/evcraddock/stayfinder/internal/remote"
	"github.com/evcraddock/stayfinder/internal/user"
)

// RemoteAuthenticator delegates to the remote service's auth endpoints.
// Every failure is returned as the service reported it.
type RemoteAuthenticator struct {
	client *remote.Client
}

// NewRemoteAuthenticator wraps client.
func NewRemoteAuthenticator(client *remote.Client) *RemoteAuthenticator {
	return &RemoteAuthenticator{client: client}
}

// Login implements Authenticator.
func (a *RemoteAuthenticator) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("remote login: %w", err)
	}
	return &Session{User: resp.User.ToUser(), Token: resp.Token}, nil
}

// Signup implements Authenticator.
func (a *RemoteAuthenticator) Signup(ctx context.Context, name, email, password string) (*Session, error) {
	resp, err := a.client.Signup(ctx, name, email, password)
	if err != nil {
		return nil, fmt.Errorf("remote signup: %w", err)
	}
	return &Session{User: resp.User.ToUser(), Token: resp.Token}, nil
}

// Me implements Authenticator.
func (a *RemoteAuthenticator) Me(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	u, err := a.client.Me(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("remote me: %w", err)
	}
	local := u.ToUser()
	return &local, nil
}
