package remote

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/karlseguin/ccache/v3"

	"github.com/evcraddock/stayfinder/internal/booking"
	"github.com/evcraddock/stayfinder/internal/property"
	"github.com/evcraddock/stayfinder/internal/storage"
	"github.com/evcraddock/stayfinder/internal/user"
	"github.com/evcraddock/stayfinder/internal/wishlist"
)

const propertiesKey = "properties"

var _ storage.Store = (*Store)(nil)

// Store implements storage.Store against the remote service.
//
// Property reads never fail: a remote error is logged and the caller sees
// an empty list or storage.ErrNotFound. User lookups degrade the same way.
// Creates and booking calls return the remote error unchanged. The service
// has no wishlist table, so adds fail with storage.ErrNotImplemented and
// every other wishlist call reports nothing saved.
type Store struct {
	client *Client
	log    *slog.Logger
	ttl    time.Duration
	cache  *ccache.Cache[[]property.Property]
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithCacheTTL caches the property list in process for ttl. Zero disables
// the cache.
func WithCacheTTL(ttl time.Duration) StoreOption {
	return func(s *Store) { s.ttl = ttl }
}

// WithLogger sets the logger degraded reads are reported to.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) { s.log = l }
}

// NewStore wraps client.
func NewStore(client *Client, opts ...StoreOption) *Store {
	s := &Store{client: client, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if s.ttl > 0 {
		s.cache = ccache.New(ccache.Configure[[]property.Property]().MaxSize(16))
	}
	return s
}

// Close stops the cache's background worker.
func (s *Store) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

func (s *Store) degraded(op string, err error) {
	s.log.Warn("remote read degraded", "op", op, "err", err)
}

func (s *Store) properties(ctx context.Context) ([]property.Property, error) {
	if s.cache != nil {
		if item := s.cache.Get(propertiesKey); item != nil && !item.Expired() {
			return item.Value(), nil
		}
	}

	rows, err := s.client.Properties(ctx)
	if err != nil {
		return nil, err
	}

	props := make([]property.Property, 0, len(rows))
	for _, r := range rows {
		props = append(props, property.FromRemote(r))
	}

	if s.cache != nil {
		s.cache.Set(propertiesKey, props, s.ttl)
	}
	return props, nil
}

// ListProperties returns every listing, or an empty list if the service
// cannot be reached.
func (s *Store) ListProperties(ctx context.Context) ([]property.Property, error) {
	props, err := s.properties(ctx)
	if err != nil {
		s.degraded("list properties", err)
		return []property.Property{}, nil
	}
	return append([]property.Property{}, props...), nil
}

// GetProperty maps every remote failure to storage.ErrNotFound.
func (s *Store) GetProperty(ctx context.Context, id int64) (*property.Property, error) {
	r, err := s.client.Property(ctx, id)
	if err != nil {
		s.degraded("get property", err)
		return nil, fmt.Errorf("property %d: %w", id, storage.ErrNotFound)
	}
	p := property.FromRemote(*r)
	return &p, nil
}

// SearchProperties filters the full list; the service has no search.
func (s *Store) SearchProperties(ctx context.Context, query string) ([]property.Property, error) {
	return s.filter(ctx, "search properties", func(p property.Property) bool {
		return property.MatchesSearch(p, query)
	})
}

// PropertiesByCategory compares categories ignoring case.
func (s *Store) PropertiesByCategory(ctx context.Context, category property.Category) ([]property.Property, error) {
	return s.filter(ctx, "properties by category", func(p property.Property) bool {
		return strings.EqualFold(string(p.Category), string(category))
	})
}

func (s *Store) filter(ctx context.Context, op string, keep func(property.Property) bool) ([]property.Property, error) {
	result := []property.Property{}

	props, err := s.properties(ctx)
	if err != nil {
		s.degraded(op, err)
		return result, nil
	}

	for _, p := range props {
		if keep(p) {
			result = append(result, p)
		}
	}
	return result, nil
}

// CreateProperty stores the listing remotely and drops the cached list.
func (s *Store) CreateProperty(ctx context.Context, n property.NewProperty) (*property.Property, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("invalid property: %w", err)
	}

	r, err := s.client.CreateProperty(ctx, property.ToRemote(n))
	if err != nil {
		return nil, fmt.Errorf("creating property: %w", err)
	}
	if s.cache != nil {
		s.cache.Delete(propertiesKey)
	}

	p := property.FromRemote(*r)
	return &p, nil
}

// GetUser maps every remote failure to storage.ErrNotFound.
func (s *Store) GetUser(ctx context.Context, id int64) (*user.User, error) {
	u, err := s.client.User(ctx, id)
	if err != nil {
		s.degraded("get user", err)
		return nil, fmt.Errorf("user %d: %w", id, storage.ErrNotFound)
	}
	local := u.ToUser()
	return &local, nil
}

// GetUserByUsername matches the username, which remote accounts take from
// their email address.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*user.User, error) {
	return s.findUser(ctx, "get user by username", func(u user.User) bool { return u.Username == username })
}

// GetUserByEmail ignores case.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.findUser(ctx, "get user by email", func(u user.User) bool { return strings.EqualFold(u.Email, email) })
}

func (s *Store) findUser(ctx context.Context, op string, match func(user.User) bool) (*user.User, error) {
	users, err := s.client.Users(ctx)
	if err != nil {
		s.degraded(op, err)
		return nil, fmt.Errorf("user: %w", storage.ErrNotFound)
	}

	for _, ru := range users {
		if u := ru.ToUser(); match(u) {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user: %w", storage.ErrNotFound)
}

// CreateUser returns the remote error unchanged.
func (s *Store) CreateUser(ctx context.Context, n user.NewUser) (*user.User, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	name := n.Name
	if name == "" {
		name = strings.TrimSpace(n.FirstName + " " + n.LastName)
	}

	created, err := s.client.CreateUser(ctx, User{
		Name:           name,
		Email:          n.Email,
		Password:       n.Password,
		ProfilePicture: n.Avatar,
		Bio:            n.Bio,
	})
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	u := created.ToUser()
	return &u, nil
}

// WishlistByUser always returns an empty list.
func (s *Store) WishlistByUser(ctx context.Context, userID int64) ([]wishlist.Item, error) {
	return []wishlist.Item{}, nil
}

// AddToWishlist always fails with storage.ErrNotImplemented.
func (s *Store) AddToWishlist(ctx context.Context, userID, propertyID int64) (*wishlist.Item, error) {
	return nil, fmt.Errorf("remote wishlist: %w", storage.ErrNotImplemented)
}

// RemoveFromWishlist always reports that nothing was removed.
func (s *Store) RemoveFromWishlist(ctx context.Context, userID, propertyID int64) (bool, error) {
	return false, nil
}

// IsInWishlist always reports false.
func (s *Store) IsInWishlist(ctx context.Context, userID, propertyID int64) (bool, error) {
	return false, nil
}

// CreateBooking returns the remote error unchanged.
func (s *Store) CreateBooking(ctx context.Context, n booking.NewBooking) (*booking.Booking, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("invalid booking: %w", err)
	}

	created, err := s.client.CreateBooking(ctx, Booking{
		PropertyID:   n.PropertyID,
		UserID:       n.UserID,
		CheckInDate:  n.CheckInDate,
		CheckOutDate: n.CheckOutDate,
		TotalPrice:   n.TotalPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("creating booking: %w", err)
	}
	b := created.ToBooking()
	return &b, nil
}

// BookingsByUser filters the full booking list; the service has no lookup
// by user.
func (s *Store) BookingsByUser(ctx context.Context, userID int64) ([]booking.Booking, error) {
	all, err := s.client.Bookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}

	result := []booking.Booking{}
	for _, b := range all {
		if b.UserID == userID {
			result = append(result, b.ToBooking())
		}
	}
	return result, nil
}
