package cli

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/evcraddock/stayfinder/internal/auth"
	"github.com/evcraddock/stayfinder/internal/storage"
	"github.com/evcraddock/stayfinder/internal/web"
)

// startServer runs an in-memory API server with one account and points the
// CLI at it.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := storage.NewMemoryStore()
	authn, err := auth.NewLocalAuthenticator(store, "test-secret")
	if err != nil {
		t.Fatalf("authenticator: %v", err)
	}
	if _, err := authn.Signup(context.Background(), "Ada", "ada@example.com", "analytical"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	api, err := web.NewServer(web.Config{Store: store, Auth: authn, Backend: "memory"})
	if err != nil {
		t.Fatalf("server: %v", err)
	}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("SF_TOKEN", "")
	t.Setenv("SF_SERVER_URL", srv.URL)
	return srv
}
