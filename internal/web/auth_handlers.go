package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/evcraddock/stayfinder/internal/auth"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type signupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.limiter.Limited(r) {
		apiError(w, "Too many login attempts, try again later", http.StatusTooManyRequests)
		return
	}

	var req loginRequest
	if details := decode(w, r, &req); details != nil {
		apiInvalid(w, details)
		return
	}

	sess, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.limiter.Fail(r)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email)
		} else {
			slog.Error("login error", "email", req.Email, "error", err)
		}
		apiError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	apiJSON(w, sess, http.StatusOK)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if details := decode(w, r, &req); details != nil {
		apiInvalid(w, details)
		return
	}

	sess, err := s.auth.Signup(r.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, auth.ErrAccountExists) {
		apiError(w, "Account already exists", http.StatusBadRequest)
		return
	}
	if err != nil {
		slog.Error("signup failed", "email", req.Email, "error", err)
		apiError(w, "Failed to create account", http.StatusBadRequest)
		return
	}

	apiJSON(w, sess, http.StatusOK)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	token := auth.BearerToken(r)
	if token == "" {
		apiError(w, "No token provided", http.StatusUnauthorized)
		return
	}

	u, err := s.auth.Me(r.Context(), token)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidToken) {
			slog.Error("token lookup failed", "error", err)
		}
		apiError(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	apiJSON(w, u, http.StatusOK)
}
