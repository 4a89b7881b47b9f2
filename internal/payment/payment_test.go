package payment

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotConfigured(t *testing.T) {
	p := NewStripeProvider("")
	assert.False(t, p.Enabled())

	_, err := p.CreateIntent(context.Background(), 1000, "usd")
	assert.True(t, errors.Is(err, ErrNotConfigured))

	var zero StripeProvider
	_, err = zero.CreateIntent(context.Background(), 1000, "usd")
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestCreateIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "36050", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "true", r.PostForm.Get("automatic_payment_methods[enabled]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "pi_123", "object": "payment_intent", "client_secret": "pi_123_secret_abc", "amount": 36050, "currency": "usd"}`))
	}))
	defer srv.Close()

	p := NewStripeProvider("sk_test_123", WithBaseURL(srv.URL))
	require.True(t, p.Enabled())

	intent, err := p.CreateIntent(context.Background(), ToCents(360.50), " USD ")
	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
}

func TestCreateIntentAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "Amount must be at least $0.50 usd"}}`))
	}))
	defer srv.Close()

	p := NewStripeProvider("sk_test_123", WithBaseURL(srv.URL))
	_, err := p.CreateIntent(context.Background(), 10, "usd")
	assert.Error(t, err)
}

func TestCreateIntentRejectsNonPositiveAmount(t *testing.T) {
	p := NewStripeProvider("sk_test_123", WithBaseURL("http://127.0.0.1:0"))
	_, err := p.CreateIntent(context.Background(), 0, "usd")
	assert.Error(t, err)
}

func TestToCents(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{360.50, 36050},
		{0.1 + 0.2, 30},
		{1200, 120000},
		{19.999, 2000},
		{0.004, 0},
		{-2.5, -250},
		{1e300, math.MaxInt64},
		{-1e300, math.MinInt64},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToCents(tt.in), "ToCents(%v)", tt.in)
	}
}
