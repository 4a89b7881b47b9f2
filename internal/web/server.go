// Package web provides the JSON HTTP API for stayfinder.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/evcraddock/stayfinder/internal/auth"
	"github.com/evcraddock/stayfinder/internal/logging"
	"github.com/evcraddock/stayfinder/internal/payment"
	"github.com/evcraddock/stayfinder/internal/storage"
)

const shutdownTimeout = 5 * time.Second

// Config holds what the server needs to answer requests.
type Config struct {
	Store    storage.Store
	Auth     auth.Authenticator
	Payments payment.Provider

	// Backend is reported by /health.
	Backend string
	// PublishableKey is handed to browsers by /api/payment/config.
	PublishableKey string
	// PlaceholderUserID owns wishlist entries until the wishlist routes
	// are tied to a logged-in user.
	PlaceholderUserID int64
}

// Server is the API HTTP server.
type Server struct {
	store    storage.Store
	auth     auth.Authenticator
	payments payment.Provider
	limiter  *auth.LoginLimiter

	backend           string
	publishableKey    string
	placeholderUserID int64

	mux     *http.ServeMux
	handler http.Handler
}

// NewServer creates a server. Store and Auth are required; a nil Payments
// provider behaves as an unconfigured one.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if cfg.Auth == nil {
		return nil, fmt.Errorf("authenticator is required")
	}
	if cfg.Payments == nil {
		cfg.Payments = payment.NewStripeProvider("")
	}
	if cfg.PlaceholderUserID == 0 {
		cfg.PlaceholderUserID = 1
	}

	s := &Server{
		store:             cfg.Store,
		auth:              cfg.Auth,
		payments:          cfg.Payments,
		limiter:           auth.NewLoginLimiter(),
		backend:           cfg.Backend,
		publishableKey:    cfg.PublishableKey,
		placeholderUserID: cfg.PlaceholderUserID,
		mux:               http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("GET /api/properties", s.handleListProperties)
	s.mux.HandleFunc("POST /api/properties", s.handleCreateProperty)
	s.mux.HandleFunc("GET /api/properties/{id}", s.handleGetProperty)
	s.mux.HandleFunc("GET /api/categories", s.handleCategories)

	s.mux.HandleFunc("GET /api/wishlist", s.handleListWishlist)
	s.mux.HandleFunc("POST /api/wishlist", s.handleAddToWishlist)
	s.mux.HandleFunc("GET /api/wishlist/{propertyId}", s.handleWishlistStatus)
	s.mux.HandleFunc("DELETE /api/wishlist/{propertyId}", s.handleRemoveFromWishlist)

	s.mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	s.mux.HandleFunc("POST /api/auth/signup", s.handleSignup)
	s.mux.HandleFunc("GET /api/auth/me", s.handleMe)

	s.mux.HandleFunc("POST /api/bookings", s.handleCreateBooking)
	s.mux.HandleFunc("GET /api/bookings/user/{userId}", s.handleUserBookings)

	s.mux.HandleFunc("POST /api/create-payment-intent", s.handleCreatePaymentIntent)
	s.mux.HandleFunc("GET /api/payment/config", s.handlePaymentConfig)

	s.mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		apiError(w, "Not found", http.StatusNotFound)
	})

	s.handler = logging.RequestLogger(s.mux)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run serves on port until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", "http://localhost"+srv.Addr, "backend", s.backend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		slog.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok", "backend": s.backend}, http.StatusOK)
}
