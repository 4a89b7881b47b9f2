// Package booking defines reservation records.
package booking

import (
	"fmt"
	"strings"
	"time"
)

// Booking is a reservation of a listing by a user. Dates are kept as the
// strings the client sent; availability is not checked here.
type Booking struct {
	ID           int64     `json:"id"`
	PropertyID   int64     `json:"property_id"`
	UserID       int64     `json:"user_id"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	TotalPrice   float64   `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewBooking is the payload for creating a reservation.
type NewBooking struct {
	PropertyID   int64   `json:"property_id"`
	UserID       int64   `json:"user_id"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	TotalPrice   float64 `json:"total_price"`
}

// Validate checks the fields every reservation needs.
func (n NewBooking) Validate() error {
	if strings.TrimSpace(n.CheckInDate) == "" || strings.TrimSpace(n.CheckOutDate) == "" {
		return fmt.Errorf("check-in and check-out dates are required")
	}
	if n.TotalPrice < 0 {
		return fmt.Errorf("total price must not be negative")
	}
	return nil
}

// Build turns the payload into a stored reservation.
func (n NewBooking) Build(id int64, createdAt time.Time) Booking {
	return Booking{
		ID:           id,
		PropertyID:   n.PropertyID,
		UserID:       n.UserID,
		CheckInDate:  n.CheckInDate,
		CheckOutDate: n.CheckOutDate,
		TotalPrice:   n.TotalPrice,
		CreatedAt:    createdAt,
	}
}
