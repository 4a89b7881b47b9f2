// Package property provides the listing view-model, the browse categories,
// and the mapping from remote records into that view-model.
package property

import (
	"fmt"
	"strings"
	"time"
)

// Defaults applied to listings that do not set their own policy or times.
const (
	DefaultCancellationPolicy = "flexible"
	DefaultCheckInTime        = "3:00 PM"
	DefaultCheckOutTime       = "11:00 AM"
)

// Property is a rental listing as served to clients.
// Nullable decimals are pointers so they encode as JSON null rather than
// being dropped.
type Property struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Location           string    `json:"location"`
	Address            string    `json:"address,omitempty"`
	City               string    `json:"city,omitempty"`
	State              string    `json:"state,omitempty"`
	Country            string    `json:"country,omitempty"`
	PricePerNight      string    `json:"pricePerNight"`
	Rating             *string   `json:"rating"`
	ReviewCount        int       `json:"reviewCount"`
	Images             []string  `json:"images"`
	Amenities          []string  `json:"amenities"`
	PropertyType       string    `json:"propertyType"`
	MaxGuests          int       `json:"maxGuests"`
	Bedrooms           int       `json:"bedrooms"`
	Beds               int       `json:"beds,omitempty"`
	Bathrooms          int       `json:"bathrooms"`
	HostName           string    `json:"hostName"`
	HostAvatar         *string   `json:"hostAvatar"`
	HostIsSuperhost    bool      `json:"hostIsSuperhost"`
	Latitude           *string   `json:"latitude"`
	Longitude          *string   `json:"longitude"`
	Category           Category  `json:"category"`
	IsGuestFavorite    bool      `json:"isGuestFavorite"`
	HasUniqueStay      bool      `json:"hasUniqueStay"`
	CancellationPolicy string    `json:"cancellationPolicy"`
	CheckInTime        string    `json:"checkInTime"`
	CheckOutTime       string    `json:"checkOutTime"`
	CreatedAt          time.Time `json:"createdAt"`
}

// NewProperty is the payload for creating a listing. The store assigns the
// ID and creation time.
type NewProperty struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Location           string   `json:"location"`
	PricePerNight      string   `json:"pricePerNight"`
	Rating             *string  `json:"rating"`
	ReviewCount        int      `json:"reviewCount"`
	Images             []string `json:"images"`
	Amenities          []string `json:"amenities"`
	PropertyType       string   `json:"propertyType"`
	MaxGuests          int      `json:"maxGuests"`
	Bedrooms           int      `json:"bedrooms"`
	Bathrooms          int      `json:"bathrooms"`
	HostName           string   `json:"hostName"`
	HostAvatar         *string  `json:"hostAvatar"`
	HostIsSuperhost    bool     `json:"hostIsSuperhost"`
	Latitude           *string  `json:"latitude"`
	Longitude          *string  `json:"longitude"`
	Category           Category `json:"category"`
	IsGuestFavorite    bool     `json:"isGuestFavorite"`
	HasUniqueStay      bool     `json:"hasUniqueStay"`
	CancellationPolicy string   `json:"cancellationPolicy"`
	CheckInTime        string   `json:"checkInTime"`
	CheckOutTime       string   `json:"checkOutTime"`
}

// Validate checks the invariants every stored listing must hold.
func (n NewProperty) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(n.Description) == "" {
		return fmt.Errorf("description is required")
	}
	if strings.TrimSpace(n.Location) == "" {
		return fmt.Errorf("location is required")
	}
	if len(n.Images) == 0 {
		return fmt.Errorf("at least one image is required")
	}
	if !n.Category.Valid() {
		return fmt.Errorf("unknown category %q", n.Category)
	}
	if n.MaxGuests < 1 || n.Bedrooms < 1 || n.Bathrooms < 1 {
		return fmt.Errorf("guest, bedroom and bathroom counts must be positive")
	}
	if n.ReviewCount < 0 {
		return fmt.Errorf("review count must not be negative")
	}
	if n.Rating != nil {
		r, err := parseDecimal(*n.Rating)
		if err != nil {
			return fmt.Errorf("invalid rating %q", *n.Rating)
		}
		if r < 0 || r > 5 {
			return fmt.Errorf("rating must be between 0 and 5, got %s", *n.Rating)
		}
	}
	if _, err := parseDecimal(n.PricePerNight); err != nil {
		return fmt.Errorf("invalid price per night %q", n.PricePerNight)
	}
	return nil
}

// Build turns the payload into a stored listing with the given identity,
// filling in default policy and check-in/out times.
func (n NewProperty) Build(id int64, createdAt time.Time) Property {
	p := Property{
		ID:                 id,
		Title:              n.Title,
		Description:        n.Description,
		Location:           n.Location,
		PricePerNight:      n.PricePerNight,
		Rating:             n.Rating,
		ReviewCount:        n.ReviewCount,
		Images:             append([]string(nil), n.Images...),
		Amenities:          append([]string{}, n.Amenities...),
		PropertyType:       n.PropertyType,
		MaxGuests:          n.MaxGuests,
		Bedrooms:           n.Bedrooms,
		Bathrooms:          n.Bathrooms,
		HostName:           n.HostName,
		HostAvatar:         n.HostAvatar,
		HostIsSuperhost:    n.HostIsSuperhost,
		Latitude:           n.Latitude,
		Longitude:          n.Longitude,
		Category:           n.Category,
		IsGuestFavorite:    n.IsGuestFavorite,
		HasUniqueStay:      n.HasUniqueStay,
		CancellationPolicy: n.CancellationPolicy,
		CheckInTime:        n.CheckInTime,
		CheckOutTime:       n.CheckOutTime,
		CreatedAt:          createdAt,
	}
	if p.CancellationPolicy == "" {
		p.CancellationPolicy = DefaultCancellationPolicy
	}
	if p.CheckInTime == "" {
		p.CheckInTime = DefaultCheckInTime
	}
	if p.CheckOutTime == "" {
		p.CheckOutTime = DefaultCheckOutTime
	}
	return p
}

// MatchesSearch reports whether the listing's title, location or
// description contains q, ignoring case.
func MatchesSearch(p Property, q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Location), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}
