// Package payment creates card payment intents for checkout.
package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// ErrNotConfigured is returned when no secret key was provided.
var ErrNotConfigured = errors.New("payment setup required")

// DefaultCurrency is used when a request names none.
const DefaultCurrency = "usd"

// Intent is a created payment intent. The client secret is handed to the
// browser to confirm the payment.
type Intent struct {
	ID           string
	ClientSecret string
}

// Provider creates payment intents.
type Provider interface {
	Enabled() bool
	CreateIntent(ctx context.Context, amountCents int64, currency string) (*Intent, error)
}

var _ Provider = (*StripeProvider)(nil)

// StripeProvider creates intents through the Stripe API. A zero-value
// provider, or one made with an empty key, fails with ErrNotConfigured.
type StripeProvider struct {
	api *client.API
}

// StripeOption configures a StripeProvider.
type StripeOption func(*stripe.BackendConfig)

// WithBaseURL points the provider at another API host.
func WithBaseURL(url string) StripeOption {
	return func(c *stripe.BackendConfig) { c.URL = stripe.String(url) }
}

// NewStripeProvider creates a provider for secretKey.
func NewStripeProvider(secretKey string, opts ...StripeOption) *StripeProvider {
	if secretKey == "" {
		return &StripeProvider{}
	}

	cfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, cfg)

	api := &client.API{}
	api.Init(secretKey, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
	return &StripeProvider{api: api}
}

// Enabled reports whether a secret key was configured.
func (p *StripeProvider) Enabled() bool {
	return p.api != nil
}

// CreateIntent creates an intent with automatic payment methods enabled.
func (p *StripeProvider) CreateIntent(ctx context.Context, amountCents int64, currency string) (*Intent, error) {
	if !p.Enabled() {
		return nil, ErrNotConfigured
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %d", amountCents)
	}

	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("creating payment intent: %w", err)
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// ToCents converts a dollar amount to the smallest currency unit, rounding
// to the nearest cent. Amounts outside the int64 range saturate.
func ToCents(amount float64) int64 {
	cents := math.Round(amount * 100)
	switch {
	case math.IsNaN(cents):
		return 0
	case cents >= math.MaxInt64:
		return math.MaxInt64
	case cents <= math.MinInt64:
		return math.MinInt64
	}
	return int64(cents)
}
