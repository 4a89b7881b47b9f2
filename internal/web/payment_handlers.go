package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/evcraddock/stayfinder/internal/payment"
)

type paymentIntentRequest struct {
	Amount   *float64 `json:"amount" validate:"required,gt=0,lte=999999.99"`
	Currency string   `json:"currency" validate:"omitempty,len=3"`
}

func (s *Server) handleCreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	if !s.payments.Enabled() {
		apiError(w, "Payment setup required", http.StatusServiceUnavailable)
		return
	}

	var req paymentIntentRequest
	if details := decode(w, r, &req); details != nil {
		apiInvalid(w, details)
		return
	}
	amount := payment.ToCents(*req.Amount)
	if amount < 1 {
		apiInvalid(w, []fieldError{{Field: "amount", Message: "Must be at least 0.01"}})
		return
	}

	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = payment.DefaultCurrency
	}

	intent, err := s.payments.CreateIntent(r.Context(), amount, currency)
	if errors.Is(err, payment.ErrNotConfigured) {
		apiError(w, "Payment setup required", http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		slog.Error("failed to create payment intent", "error", err)
		apiError(w, "Failed to create payment intent", http.StatusInternalServerError)
		return
	}

	apiJSON(w, map[string]string{"clientSecret": intent.ClientSecret}, http.StatusOK)
}

func (s *Server) handlePaymentConfig(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]any{
		"enabled":        s.payments.Enabled() && s.publishableKey != "",
		"publishableKey": s.publishableKey,
	}, http.StatusOK)
}
