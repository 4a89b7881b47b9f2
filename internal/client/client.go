// Package client provides an HTTP client for the stayfinder REST API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/evcraddock/stayfinder/internal/auth"
	"github.com/evcraddock/stayfinder/internal/booking"
	"github.com/evcraddock/stayfinder/internal/property"
	"github.com/evcraddock/stayfinder/internal/user"
	"github.com/evcraddock/stayfinder/internal/wishlist"
)

// Client is an HTTP client for the stayfinder API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client. token may be empty; it is only needed for
// routes that identify the caller.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Category is a browse category as listed by the server.
type Category struct {
	ID    property.Category `json:"id"`
	Label string            `json:"label"`
}

// Health is the response from GET /health.
type Health struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

// ListOptions controls filtering for ListProperties. Search wins over
// Category when both are set.
type ListOptions struct {
	Search   string
	Category string
}

// ListProperties returns the catalog, optionally filtered.
func (c *Client) ListProperties(opts ListOptions) ([]property.Property, error) {
	params := url.Values{}
	if opts.Search != "" {
		params.Set("search", opts.Search)
	}
	if opts.Category != "" {
		params.Set("category", opts.Category)
	}

	path := "/api/properties"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var props []property.Property
	if err := c.get(path, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// GetProperty returns a single listing.
func (c *Client) GetProperty(id int64) (*property.Property, error) {
	var p property.Property
	if err := c.get(fmt.Sprintf("/api/properties/%d", id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProperty adds a listing.
func (c *Client) CreateProperty(n property.NewProperty) (*property.Property, error) {
	var p property.Property
	if err := c.send("POST", "/api/properties", n, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Categories returns the browse categories in display order.
func (c *Client) Categories() ([]Category, error) {
	var cats []Category
	if err := c.get("/api/categories", &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// Wishlist returns the saved listings.
func (c *Client) Wishlist() ([]wishlist.Item, error) {
	var items []wishlist.Item
	if err := c.get("/api/wishlist", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToWishlist saves a listing.
func (c *Client) AddToWishlist(propertyID int64) (*wishlist.Item, error) {
	body := map[string]int64{"propertyId": propertyID}
	var it wishlist.Item
	if err := c.send("POST", "/api/wishlist", body, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// RemoveFromWishlist unsaves a listing.
func (c *Client) RemoveFromWishlist(propertyID int64) error {
	return c.send("DELETE", fmt.Sprintf("/api/wishlist/%d", propertyID), nil, nil)
}

// Login exchanges credentials for a session.
func (c *Client) Login(email, password string) (*auth.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var sess auth.Session
	if err := c.send("POST", "/api/auth/login", body, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Me returns the user the client's token belongs to.
func (c *Client) Me() (*user.User, error) {
	var u user.User
	if err := c.get("/api/auth/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Bookings returns a user's reservations.
func (c *Client) Bookings(userID int64) ([]booking.Booking, error) {
	var list []booking.Booking
	if err := c.get(fmt.Sprintf("/api/bookings/user/%d", userID), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Health checks that the server is up.
func (c *Client) Health() (*Health, error) {
	var h Health
	if err := c.get("/health", &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *Client) get(path string, result interface{}) error {
	return c.send("GET", path, nil, result)
}

// send performs a request with an optional JSON body and decodes the
// response into result when it is non-nil.
func (c *Client) send(method, path string, body interface{}, result interface{}) error {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		r = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, r)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, result)
}

// do executes an HTTP request with auth header and handles errors.
func (c *Client) do(req *http.Request, result interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return responseError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// responseError surfaces the server's error text, including field details
// for validation failures.
func responseError(status int, body []byte) error {
	var errResp struct {
		Error   string `json:"error"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	if json.Unmarshal(body, &errResp) != nil || errResp.Error == "" {
		return fmt.Errorf("server error: %s", http.StatusText(status))
	}
	if len(errResp.Details) == 0 {
		return fmt.Errorf("%s", errResp.Error)
	}

	parts := make([]string, 0, len(errResp.Details))
	for _, d := range errResp.Details {
		parts = append(parts, d.Field+": "+d.Message)
	}
	return fmt.Errorf("%s (%s)", errResp.Error, strings.Join(parts, "; "))
}
