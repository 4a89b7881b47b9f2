package web

import (
	"log/slog"
	"net/http"

	"github.com/evcraddock/stayfinder/internal/booking"
)

type createBookingRequest struct {
	CheckInDate  string   `json:"check_in_date" validate:"required"`
	CheckOutDate string   `json:"check_out_date" validate:"required"`
	TotalPrice   *float64 `json:"total_price" validate:"required,gte=0"`
	PropertyID   *int64   `json:"property_id" validate:"required,gt=0"`
	UserID       *int64   `json:"user_id" validate:"required,gt=0"`
}

// handleCreateBooking records a reservation. Availability is left to the
// store; nothing here checks for overlapping stays.
func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if details := decode(w, r, &req); details != nil {
		apiInvalid(w, details)
		return
	}

	b, err := s.store.CreateBooking(r.Context(), booking.NewBooking{
		PropertyID:   *req.PropertyID,
		UserID:       *req.UserID,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		TotalPrice:   *req.TotalPrice,
	})
	if err != nil {
		slog.Error("failed to create booking", "property_id", *req.PropertyID, "error", err)
		apiError(w, "Failed to create booking", http.StatusInternalServerError)
		return
	}

	apiJSON(w, b, http.StatusOK)
}

func (s *Server) handleUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		apiError(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	bookings, err := s.store.BookingsByUser(r.Context(), userID)
	if err != nil {
		slog.Error("failed to fetch bookings", "user_id", userID, "error", err)
		apiError(w, "Failed to fetch bookings", http.StatusInternalServerError)
		return
	}
	if bookings == nil {
		bookings = []booking.Booking{}
	}

	apiJSON(w, bookings, http.StatusOK)
}
