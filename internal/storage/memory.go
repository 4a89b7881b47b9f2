package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/evcraddock/stayfinder/internal/booking"
	"github.com/evcraddock/stayfinder/internal/property"
	"github.com/evcraddock/stayfinder/internal/user"
	"github.com/evcraddock/stayfinder/internal/wishlist"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps every entity in process memory. IDs are assigned per
// entity type starting at 1 and are never reused, even after a wishlist
// item is removed. Contents are lost when the process exits.
type MemoryStore struct {
	mu   sync.RWMutex
	now  func() time.Time
	seed bool

	properties []property.Property
	users      map[int64]user.User
	wishlist   map[int64]wishlist.Item
	bookings   map[int64]booking.Booking

	nextPropertyID int64
	nextUserID     int64
	nextWishlistID int64
	nextBookingID  int64
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock overrides the clock used to stamp creation times.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) { s.now = now }
}

// WithoutSeed starts the store with an empty catalog.
func WithoutSeed() MemoryOption {
	return func(s *MemoryStore) { s.seed = false }
}

// NewMemoryStore creates a store seeded with the sample catalog.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		now:            time.Now,
		seed:           true,
		properties:     []property.Property{},
		users:          make(map[int64]user.User),
		wishlist:       make(map[int64]wishlist.Item),
		bookings:       make(map[int64]booking.Booking),
		nextPropertyID: 1,
		nextUserID:     1,
		nextWishlistID: 1,
		nextBookingID:  1,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.seed {
		for _, n := range property.SeedCatalog() {
			s.insertProperty(n)
		}
	}

	return s
}

// insertProperty must be called with mu held (or before the store is shared).
func (s *MemoryStore) insertProperty(n property.NewProperty) property.Property {
	p := n.Build(s.nextPropertyID, s.now())
	s.nextPropertyID++
	s.properties = append(s.properties, p)
	return p
}

// ListProperties returns the catalog in ID order.
func (s *MemoryStore) ListProperties(ctx context.Context) ([]property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]property.Property{}, s.properties...), nil
}

// GetProperty returns ErrNotFound for unknown IDs.
func (s *MemoryStore) GetProperty(ctx context.Context, id int64) (*property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.properties {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("property %d: %w", id, ErrNotFound)
}

// SearchProperties matches query against title, location and description,
// ignoring case. Catalog order is preserved.
func (s *MemoryStore) SearchProperties(ctx context.Context, query string) ([]property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []property.Property{}
	for _, p := range s.properties {
		if property.MatchesSearch(p, query) {
			result = append(result, p)
		}
	}
	return result, nil
}

// PropertiesByCategory is an exact match on the category token.
func (s *MemoryStore) PropertiesByCategory(ctx context.Context, category property.Category) ([]property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []property.Property{}
	for _, p := range s.properties {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result, nil
}

// CreateProperty validates and stores a new listing.
func (s *MemoryStore) CreateProperty(ctx context.Context, n property.NewProperty) (*property.Property, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("invalid property: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.insertProperty(n)
	return &p, nil
}

// GetUser returns ErrNotFound for unknown IDs.
func (s *MemoryStore) GetUser(ctx context.Context, id int64) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return &u, nil
}

// GetUserByUsername is an exact match.
func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*user.User, error) {
	return s.findUser(func(u user.User) bool { return u.Username == username })
}

// GetUserByEmail ignores case.
func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.findUser(func(u user.User) bool { return strings.EqualFold(u.Email, email) })
}

func (s *MemoryStore) findUser(match func(user.User) bool) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user: %w", ErrNotFound)
}

// CreateUser returns ErrConflict if the username or email is taken.
func (s *MemoryStore) CreateUser(ctx context.Context, n user.NewUser) (*user.User, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == n.Username || strings.EqualFold(u.Email, n.Email) {
			return nil, fmt.Errorf("user %s: %w", n.Email, ErrConflict)
		}
	}

	u := n.Build(s.nextUserID, s.now())
	s.nextUserID++
	s.users[u.ID] = u
	return &u, nil
}

// WishlistByUser returns the user's items in insertion order.
func (s *MemoryStore) WishlistByUser(ctx context.Context, userID int64) ([]wishlist.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []wishlist.Item{}
	for _, it := range s.wishlist {
		if it.UserID == userID {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// AddToWishlist saves a listing for a user. Saving the same listing twice
// returns the existing item.
func (s *MemoryStore) AddToWishlist(ctx context.Context, userID, propertyID int64) (*wishlist.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, existing, ok := s.findWishlistItem(userID, propertyID); ok {
		return &existing, nil
	}

	it := wishlist.Item{
		ID:         s.nextWishlistID,
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  s.now(),
	}
	s.nextWishlistID++
	s.wishlist[it.ID] = it
	return &it, nil
}

// RemoveFromWishlist reports whether an item was removed.
func (s *MemoryStore) RemoveFromWishlist(ctx context.Context, userID, propertyID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, _, ok := s.findWishlistItem(userID, propertyID)
	if !ok {
		return false, nil
	}
	delete(s.wishlist, id)
	return true, nil
}

// IsInWishlist reports whether the user has saved the listing.
func (s *MemoryStore) IsInWishlist(ctx context.Context, userID, propertyID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, _, ok := s.findWishlistItem(userID, propertyID)
	return ok, nil
}

// findWishlistItem must be called with mu held.
func (s *MemoryStore) findWishlistItem(userID, propertyID int64) (int64, wishlist.Item, bool) {
	for id, it := range s.wishlist {
		if it.UserID == userID && it.PropertyID == propertyID {
			return id, it, true
		}
	}
	return 0, wishlist.Item{}, false
}

// CreateBooking stores a reservation without checking availability.
func (s *MemoryStore) CreateBooking(ctx context.Context, n booking.NewBooking) (*booking.Booking, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("invalid booking: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := n.Build(s.nextBookingID, s.now())
	s.nextBookingID++
	s.bookings[b.ID] = b
	return &b, nil
}

// BookingsByUser returns the user's reservations in creation order.
func (s *MemoryStore) BookingsByUser(ctx context.Context, userID int64) ([]booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []booking.Booking{}
	for _, b := range s.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
