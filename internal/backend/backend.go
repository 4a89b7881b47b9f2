// Package backend picks the storage and authentication implementations the
// server runs with.
package backend

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/evcraddock/stayfinder/internal/auth"
	"github.com/evcraddock/stayfinder/internal/config"
	"github.com/evcraddock/stayfinder/internal/db"
	"github.com/evcraddock/stayfinder/internal/remote"
	"github.com/evcraddock/stayfinder/internal/storage"
)

// Kind names the selected backend.
type Kind string

// Backend kinds.
const (
	KindMemory Kind = "memory"
	KindSQLite Kind = "sqlite"
	KindRemote Kind = "remote"
)

// Backend is the store and authenticator chosen at startup.
type Backend struct {
	Kind  Kind
	Store storage.Store
	Auth  auth.Authenticator

	close func() error
}

// Close releases the backend's resources.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Select builds the backend for cfg. In dev mode without a remote endpoint
// it uses SQLite when a database path is set and memory otherwise, with
// local accounts. In every other case it uses the remote service, which
// needs both an endpoint and an API key.
func Select(ctx context.Context, cfg config.Config) (*Backend, error) {
	if cfg.UseRemote() {
		return selectRemote(cfg)
	}

	secret := cfg.JWTSecret
	if secret == "" {
		var err error
		if secret, err = auth.RandomSecret(); err != nil {
			return nil, err
		}
		slog.Warn("no JWT secret configured; tokens will not survive a restart")
	}

	if cfg.DBPath == "" {
		store := storage.NewMemoryStore()
		return local(KindMemory, store, secret, nil)
	}

	path, err := db.ResolvePath(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	store, err := db.NewStore(ctx, database)
	if err != nil {
		return nil, closeDB(database, fmt.Errorf("preparing database: %w", err))
	}
	b, err := local(KindSQLite, store, secret, database.Close)
	if err != nil {
		return nil, closeDB(database, err)
	}
	return b, nil
}

func local(kind Kind, store storage.Store, secret string, closeFn func() error) (*Backend, error) {
	a, err := auth.NewLocalAuthenticator(store, secret)
	if err != nil {
		return nil, err
	}
	return &Backend{Kind: kind, Store: store, Auth: a, close: closeFn}, nil
}

func selectRemote(cfg config.Config) (*Backend, error) {
	if cfg.RemoteEndpoint == "" || cfg.RemoteAPIKey == "" {
		return nil, fmt.Errorf("remote backend needs SF_REMOTE_ENDPOINT and SF_REMOTE_API_KEY (or set SF_DEV_MODE=true for local storage)")
	}

	client, err := remote.NewClient(cfg.RemoteEndpoint, cfg.RemoteAPIKey)
	if err != nil {
		return nil, err
	}
	store := remote.NewStore(client, remote.WithCacheTTL(cfg.RemoteCacheTTL))

	return &Backend{
		Kind:  KindRemote,
		Store: store,
		Auth:  auth.NewRemoteAuthenticator(client),
		close: func() error {
			store.Close()
			return nil
		},
	}, nil
}

func closeDB(database *sql.DB, err error) error {
	if closeErr := database.Close(); closeErr != nil {
		return fmt.Errorf("%w (also failed to close: %v)", err, closeErr)
	}
	return err
}
