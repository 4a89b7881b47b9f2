// Package storage declares the entity-access interface the HTTP layer uses
// and provides the in-memory implementation.
package storage

import (
	"context"
	"errors"

	"github.com/evcraddock/stayfinder/internal/booking"
	"github.com/evcraddock/stayfinder/internal/property"
	"github.com/evcraddock/stayfinder/internal/user"
	"github.com/evcraddock/stayfinder/internal/wishlist"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique field is already taken.
	ErrConflict = errors.New("already exists")
	// ErrNotImplemented is returned by backends that cannot perform an
	// operation at all.
	ErrNotImplemented = errors.New("not implemented")
)

// Store is the uniform entity-access interface. One implementation is
// chosen at startup and shared by every request.
type Store interface {
	ListProperties(ctx context.Context) ([]property.Property, error)
	GetProperty(ctx context.Context, id int64) (*property.Property, error)
	SearchProperties(ctx context.Context, query string) ([]property.Property, error)
	PropertiesByCategory(ctx context.Context, category property.Category) ([]property.Property, error)
	CreateProperty(ctx context.Context, p property.NewProperty) (*property.Property, error)

	GetUser(ctx context.Context, id int64) (*user.User, error)
	GetUserByUsername(ctx context.Context, username string) (*user.User, error)
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	CreateUser(ctx context.Context, u user.NewUser) (*user.User, error)

	WishlistByUser(ctx context.Context, userID int64) ([]wishlist.Item, error)
	AddToWishlist(ctx context.Context, userID, propertyID int64) (*wishlist.Item, error)
	RemoveFromWishlist(ctx context.Context, userID, propertyID int64) (bool, error)
	IsInWishlist(ctx context.Context, userID, propertyID int64) (bool, error)

	CreateBooking(ctx context.Context, b booking.NewBooking) (*booking.Booking, error)
	BookingsByUser(ctx context.Context, userID int64) ([]booking.Booking, error)
}
