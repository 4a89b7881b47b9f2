package web

import (
	"net/http"
	"testing"

	"github.com/evcraddock/stayfinder/internal/auth"
	"github.com/evcraddock/stayfinder/internal/user"
)

func signup(t *testing.T, srv http.Handler, name, email, password string) auth.Session {
	t.Helper()
	w := apiRequest(t, srv, "POST", "/api/auth/signup", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("signup status = %d: %s", w.Code, w.Body.String())
	}
	var sess auth.Session
	decodeBody(t, w, &sess)
	return sess
}

func TestSignupLoginMe(t *testing.T) {
	srv := newTestServer(t)

	sess := signup(t, srv, "Ada Lovelace", "ada@example.com", "analytical")
	if sess.Token == "" {
		t.Fatal("signup returned no token")
	}
	if sess.User.Email != "ada@example.com" || sess.User.Name != "Ada Lovelace" {
		t.Errorf("signup user = %+v", sess.User)
	}

	w := apiRequest(t, srv, "POST", "/api/auth/login", "", map[string]string{
		"email": "ADA@example.com", "password": "analytical",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", w.Code, w.Body.String())
	}
	var login auth.Session
	decodeBody(t, w, &login)
	if login.User.ID != sess.User.ID {
		t.Errorf("login user id = %d, want %d", login.User.ID, sess.User.ID)
	}

	w = apiRequest(t, srv, "GET", "/api/auth/me", login.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d", w.Code)
	}
	var me user.User
	decodeBody(t, w, &me)
	if me.Email != "ada@example.com" {
		t.Errorf("me = %+v", me)
	}
}

func TestSignupRejections(t *testing.T) {
	srv := newTestServer(t)
	signup(t, srv, "Ada", "ada@example.com", "analytical")

	tests := []struct {
		name    string
		body    map[string]string
		wantErr string
	}{
		{"short name", map[string]string{"name": "A", "email": "a@example.com", "password": "secret1"}, "Invalid data"},
		{"bad email", map[string]string{"name": "Al", "email": "nope", "password": "secret1"}, "Invalid data"},
		{"short password", map[string]string{"name": "Al", "email": "a@example.com", "password": "123"}, "Invalid data"},
		{"duplicate", map[string]string{"name": "Ada", "email": "ada@example.com", "password": "analytical"}, "Account already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := apiRequest(t, srv, "POST", "/api/auth/signup", "", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if msg := errorMessage(t, w); msg != tt.wantErr {
				t.Errorf("error = %q, want %q", msg, tt.wantErr)
			}
		})
	}
}

func TestLoginFailures(t *testing.T) {
	srv := newTestServer(t)
	signup(t, srv, "Ada", "ada@example.com", "analytical")

	w := apiRequest(t, srv, "POST", "/api/auth/login", "", map[string]string{"email": "ada@example.com"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing password: status = %d, want 400", w.Code)
	}

	for _, body := range []map[string]string{
		{"email": "ada@example.com", "password": "wrong-password"},
		{"email": "ghost@example.com", "password": "analytical"},
	} {
		w := apiRequest(t, srv, "POST", "/api/auth/login", "", body)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%v: status = %d, want 401", body, w.Code)
		}
		if msg := errorMessage(t, w); msg != "Invalid credentials" {
			t.Errorf("error = %q", msg)
		}
	}
}

func TestLoginRateLimit(t *testing.T) {
	srv := newTestServer(t)

	body := map[string]string{"email": "ghost@example.com", "password": "whatever"}
	for i := 0; i < 10; i++ {
		if w := apiRequest(t, srv, "POST", "/api/auth/login", "", body); w.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: status = %d, want 401", i+1, w.Code)
		}
	}

	w := apiRequest(t, srv, "POST", "/api/auth/login", "", body)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", w.Code)
	}
}

func TestMeRejections(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name    string
		token   string
		wantErr string
	}{
		{"no token", "", "No token provided"},
		{"garbage", "not-a-jwt", "Invalid token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := apiRequest(t, srv, "GET", "/api/auth/me", tt.token, nil)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}
			if msg := errorMessage(t, w); msg != tt.wantErr {
				t.Errorf("error = %q, want %q", msg, tt.wantErr)
			}
		})
	}
}
