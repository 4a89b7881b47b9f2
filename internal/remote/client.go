// Package remote talks to the hosted backend-as-a-service and adapts it to
// the storage interface.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/evcraddock/stayfinder/internal/booking"
	"github.com/evcraddock/stayfinder/internal/property"
	"github.com/evcraddock/stayfinder/internal/user"
)

// UnavailableError is returned when the remote service answers with a
// non-2xx status.
type UnavailableError struct {
	Status int
	Body   string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("remote API error: %d - %s", e.Status, e.Body)
}

// IsStatus reports whether err is an UnavailableError with the given status.
func IsStatus(err error, status int) bool {
	var ue *UnavailableError
	return errors.As(err, &ue) && ue.Status == status
}

// User is an account as the remote service stores it.
type User struct {
	ID             int64              `json:"id"`
	CreatedAt      property.Timestamp `json:"created_at"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Password       string             `json:"password,omitempty"`
	ProfilePicture string             `json:"profile_picture,omitempty"`
	Bio            string             `json:"bio,omitempty"`
}

// AuthResponse is returned by the login and signup endpoints.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Booking is a reservation as the remote service stores it.
type Booking struct {
	ID           int64              `json:"id,omitempty"`
	CreatedAt    property.Timestamp `json:"created_at"`
	PropertyID   int64              `json:"property_id"`
	UserID       int64              `json:"user_id"`
	CheckInDate  string             `json:"check_in_date"`
	CheckOutDate string             `json:"check_out_date"`
	TotalPrice   float64            `json:"total_price"`
}

// Client is an authenticated JSON client for the remote service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a client for endpoint. Both arguments are required.
func NewClient(endpoint, apiKey string) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("remote endpoint is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("remote API key is required")
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
	}, nil
}

// Properties lists every listing.
func (c *Client) Properties(ctx context.Context) ([]property.RemoteProperty, error) {
	var out []property.RemoteProperty
	if err := c.request(ctx, http.MethodGet, "/property", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Property fetches a single listing.
func (c *Client) Property(ctx context.Context, id int64) (*property.RemoteProperty, error) {
	var out property.RemoteProperty
	if err := c.request(ctx, http.MethodGet, fmt.Sprintf("/property/%d", id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProperty stores a listing and returns the stored record.
func (c *Client) CreateProperty(ctx context.Context, p property.RemoteProperty) (*property.RemoteProperty, error) {
	var out property.RemoteProperty
	if err := c.request(ctx, http.MethodPost, "/property", "", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// User fetches a single account.
func (c *Client) User(ctx context.Context, id int64) (*User, error) {
	var out User
	if err := c.request(ctx, http.MethodGet, fmt.Sprintf("/user/%d", id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Users lists every account. The service has no lookup by field.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.request(ctx, http.MethodGet, "/user", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser stores an account.
func (c *Client) CreateUser(ctx context.Context, u User) (*User, error) {
	var out User
	if err := c.request(ctx, http.MethodPost, "/user", "", u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthResponse
	if err := c.request(ctx, http.MethodPost, "/auth/login", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup creates an account and returns a session token for it.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var out AuthResponse
	if err := c.request(ctx, http.MethodPost, "/auth/signup", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the account that token belongs to. The caller's token replaces
// the API key for this request.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var out User
	if err := c.request(ctx, http.MethodGet, "/auth/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBooking stores a reservation.
func (c *Client) CreateBooking(ctx context.Context, b Booking) (*Booking, error) {
	var out Booking
	if err := c.request(ctx, http.MethodPost, "/booking", "", b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bookings lists every reservation.
func (c *Client) Bookings(ctx context.Context) ([]Booking, error) {
	var out []Booking
	if err := c.request(ctx, http.MethodGet, "/booking", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// request sends a JSON request and decodes the response into out. When
// token is empty the API key is used as the bearer credential.
func (c *Client) request(ctx context.Context, method, path, token string, body, out any) (err error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if token == "" {
		token = c.apiKey
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing body: %w", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &UnavailableError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s: %w", method, path, err)
	}
	return nil
}

// ToUser converts the remote account. Remote accounts have no username, so
// the email address stands in for it.
func (u User) ToUser() user.User {
	return user.User{
		ID:        u.ID,
		Username:  u.Email,
		Email:     u.Email,
		Password:  u.Password,
		Name:      u.Name,
		Avatar:    u.ProfilePicture,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt.Time(),
	}
}

// ToBooking converts the remote reservation.
func (b Booking) ToBooking() booking.Booking {
	return booking.Booking{
		ID:           b.ID,
		PropertyID:   b.PropertyID,
		UserID:       b.UserID,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		TotalPrice:   b.TotalPrice,
		CreatedAt:    b.CreatedAt.Time(),
	}
}
