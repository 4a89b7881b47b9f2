package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evcraddock/stayfinder/internal/remote"
)

func newTestRemote(t *testing.T, h http.HandlerFunc) *RemoteAuthenticator {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := remote.NewClient(srv.URL, "api-key")
	require.NoError(t, err)
	return NewRemoteAuthenticator(c)
}

func TestRemoteLogin(t *testing.T) {
	a := newTestRemote(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"user": {"id": 4, "name": "Ana", "email": "ana@example.com", "profile_picture": "https://img/ana.png"}, "token": "remote-token"}`))
	})

	s, err := a.Login(context.Background(), "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "remote-token", s.Token)
	assert.Equal(t, int64(4), s.User.ID)
	assert.Equal(t, "https://img/ana.png", s.User.Avatar)
}

func TestRemoteFailuresPropagate(t *testing.T) {
	a := newTestRemote(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Invalid credentials"}`, http.StatusForbidden)
	})
	ctx := context.Background()

	_, err := a.Login(ctx, "ana@example.com", "bad")
	assert.True(t, remote.IsStatus(err, http.StatusForbidden))

	_, err = a.Signup(ctx, "Ana", "ana@example.com", "secret1")
	assert.True(t, remote.IsStatus(err, http.StatusForbidden))

	_, err = a.Me(ctx, "tok")
	assert.True(t, remote.IsStatus(err, http.StatusForbidden))
}

func TestRemoteMeForwardsToken(t *testing.T) {
	a := newTestRemote(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id": 4, "email": "ana@example.com"}`))
	})

	u, err := a.Me(context.Background(), "user-token")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)

	_, err = a.Me(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
