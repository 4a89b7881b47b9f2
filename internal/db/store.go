package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/evcraddock/stayfinder/internal/booking"
	"github.com/evcraddock/stayfinder/internal/property"
	"github.com/evcraddock/stayfinder/internal/storage"
	"github.com/evcraddock/stayfinder/internal/user"
	"github.com/evcraddock/stayfinder/internal/wishlist"
)

var _ storage.Store = (*Store)(nil)

// Store implements storage.Store on a SQLite database opened with Open.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore wraps db and seeds the sample catalog if the properties table
// is empty.
func NewStore(ctx context.Context, db *sql.DB) (*Store, error) {
	s := &Store{db: db, now: time.Now}
	if err := s.seed(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) seed(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM properties").Scan(&n); err != nil {
		return fmt.Errorf("counting properties: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, p := range property.SeedCatalog() {
		if _, err := s.CreateProperty(ctx, p); err != nil {
			return fmt.Errorf("seeding %q: %w", p.Title, err)
		}
	}
	return nil
}

const insertPropertySQL = `INSERT INTO properties
	(title, description, location, price_per_night, rating, review_count, images, amenities,
	 property_type, max_guests, bedrooms, bathrooms, host_name, host_avatar, host_is_superhost,
	 latitude, longitude, category, is_guest_favorite, has_unique_stay,
	 cancellation_policy, check_in_time, check_out_time, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const propertyColumns = `id, title, description, location, price_per_night, rating, review_count,
	images, amenities, property_type, max_guests, bedrooms, bathrooms, host_name, host_avatar,
	host_is_superhost, latitude, longitude, category, is_guest_favorite, has_unique_stay,
	cancellation_policy, check_in_time, check_out_time, created_at`

// CreateProperty validates and inserts a listing.
func (s *Store) CreateProperty(ctx context.Context, n property.NewProperty) (*property.Property, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("invalid property: %w", err)
	}

	// Build fills in the defaults; the ID comes from the insert.
	p := n.Build(0, s.now().UTC())

	images, err := json.Marshal(p.Images)
	if err != nil {
		return nil, fmt.Errorf("encoding images: %w", err)
	}
	amenities, err := json.Marshal(p.Amenities)
	if err != nil {
		return nil, fmt.Errorf("encoding amenities: %w", err)
	}

	result, err := s.db.ExecContext(ctx, insertPropertySQL,
		p.Title, p.Description, p.Location, p.PricePerNight, p.Rating, p.ReviewCount,
		string(images), string(amenities), p.PropertyType, p.MaxGuests, p.Bedrooms, p.Bathrooms,
		p.HostName, p.HostAvatar, p.HostIsSuperhost, p.Latitude, p.Longitude, string(p.Category),
		p.IsGuestFavorite, p.HasUniqueStay, p.CancellationPolicy, p.CheckInTime, p.CheckOutTime,
		p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting property: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	return s.GetProperty(ctx, id)
}

// GetProperty returns storage.ErrNotFound for unknown IDs.
func (s *Store) GetProperty(ctx context.Context, id int64) (*property.Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties WHERE id = ?", propertyColumns)
	p, err := scanProperty(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("property %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying property %d: %w", id, err)
	}
	return p, nil
}

// ListProperties returns the catalog in ID order.
func (s *Store) ListProperties(ctx context.Context) ([]property.Property, error) {
	return s.queryProperties(ctx, "")
}

// SearchProperties matches title, location and description, ignoring case.
func (s *Store) SearchProperties(ctx context.Context, query string) ([]property.Property, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	return s.queryProperties(ctx,
		`WHERE lower(title) LIKE ? ESCAPE '\' OR lower(location) LIKE ? ESCAPE '\' OR lower(description) LIKE ? ESCAPE '\'`,
		pattern, pattern, pattern)
}

// PropertiesByCategory is an exact match on the category token.
func (s *Store) PropertiesByCategory(ctx context.Context, category property.Category) ([]property.Property, error) {
	return s.queryProperties(ctx, "WHERE category = ?", string(category))
}

func (s *Store) queryProperties(ctx context.Context, where string, args ...any) (_ []property.Property, err error) {
	query := fmt.Sprintf("SELECT %s FROM properties %s ORDER BY id", propertyColumns, where)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	properties := []property.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		properties = append(properties, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating properties: %w", err)
	}

	return properties, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProperty(row scanner) (*property.Property, error) {
	var (
		p                           property.Property
		rating, avatar, lat, lng    sql.NullString
		images, amenities, category string
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Location, &p.PricePerNight, &rating, &p.ReviewCount,
		&images, &amenities, &p.PropertyType, &p.MaxGuests, &p.Bedrooms, &p.Bathrooms,
		&p.HostName, &avatar, &p.HostIsSuperhost, &lat, &lng, &category,
		&p.IsGuestFavorite, &p.HasUniqueStay, &p.CancellationPolicy, &p.CheckInTime,
		&p.CheckOutTime, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(images), &p.Images); err != nil {
		return nil, fmt.Errorf("decoding images: %w", err)
	}
	if err := json.Unmarshal([]byte(amenities), &p.Amenities); err != nil {
		return nil, fmt.Errorf("decoding amenities: %w", err)
	}

	p.Category = property.Category(category)
	p.Rating = nullable(rating)
	p.HostAvatar = nullable(avatar)
	p.Latitude = nullable(lat)
	p.Longitude = nullable(lng)

	return &p, nil
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

const userColumns = `id, username, email, password, name, first_name, last_name, avatar, bio, created_at`

// CreateUser returns storage.ErrConflict if the username or email is taken.
func (s *Store) CreateUser(ctx context.Context, n user.NewUser) (*user.User, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password, name, first_name, last_name, avatar, bio, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.Username, n.Email, n.Password, n.Name, n.FirstName, n.LastName, n.Avatar, n.Bio, s.now().UTC(),
	)
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("user %s: %w", n.Email, storage.ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}
	return s.GetUser(ctx, id)
}

// GetUser returns storage.ErrNotFound for unknown IDs.
func (s *Store) GetUser(ctx context.Context, id int64) (*user.User, error) {
	return s.queryUser(ctx, "id = ?", id)
}

// GetUserByUsername is an exact match.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*user.User, error) {
	return s.queryUser(ctx, "username = ?", username)
}

// GetUserByEmail ignores case.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.queryUser(ctx, "email = ? COLLATE NOCASE", email)
}

func (s *Store) queryUser(ctx context.Context, where string, arg any) (*user.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s", userColumns, where)

	var u user.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.Password, &u.Name,
		&u.FirstName, &u.LastName, &u.Avatar, &u.Bio, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %v: %w", arg, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return &u, nil
}

// WishlistByUser returns the user's items in insertion order.
func (s *Store) WishlistByUser(ctx context.Context, userID int64) (_ []wishlist.Item, err error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, property_id, created_at FROM wishlist WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, fmt.Errorf("listing wishlist: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	items := []wishlist.Item{}
	for rows.Next() {
		var it wishlist.Item
		if err := rows.Scan(&it.ID, &it.UserID, &it.PropertyID, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning wishlist item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating wishlist: %w", err)
	}
	return items, nil
}

// AddToWishlist saves a listing for a user. Saving the same listing twice
// returns the existing item.
func (s *Store) AddToWishlist(ctx context.Context, userID, propertyID int64) (*wishlist.Item, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO wishlist (user_id, property_id, created_at) VALUES (?, ?, ?)
		 ON CONFLICT (user_id, property_id) DO NOTHING`,
		userID, propertyID, s.now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("adding to wishlist: %w", err)
	}

	var it wishlist.Item
	err = s.db.QueryRowContext(ctx,
		"SELECT id, user_id, property_id, created_at FROM wishlist WHERE user_id = ? AND property_id = ?",
		userID, propertyID,
	).Scan(&it.ID, &it.UserID, &it.PropertyID, &it.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("reading wishlist item: %w", err)
	}
	return &it, nil
}

// RemoveFromWishlist reports whether an item was removed.
func (s *Store) RemoveFromWishlist(ctx context.Context, userID, propertyID int64) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM wishlist WHERE user_id = ? AND property_id = ?", userID, propertyID)
	if err != nil {
		return false, fmt.Errorf("removing from wishlist: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking rows affected: %w", err)
	}
	return n > 0, nil
}

// IsInWishlist reports whether the user has saved the listing.
func (s *Store) IsInWishlist(ctx context.Context, userID, propertyID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM wishlist WHERE user_id = ? AND property_id = ?)",
		userID, propertyID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking wishlist: %w", err)
	}
	return exists, nil
}

// CreateBooking stores a reservation without checking availability.
func (s *Store) CreateBooking(ctx context.Context, n booking.NewBooking) (*booking.Booking, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("invalid booking: %w", err)
	}

	createdAt := s.now().UTC()
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO bookings (property_id, user_id, check_in_date, check_out_date, total_price, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		n.PropertyID, n.UserID, n.CheckInDate, n.CheckOutDate, n.TotalPrice, createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting booking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	b := n.Build(id, createdAt)
	return &b, nil
}

// BookingsByUser returns the user's reservations in creation order.
func (s *Store) BookingsByUser(ctx context.Context, userID int64) (_ []booking.Booking, err error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, property_id, user_id, check_in_date, check_out_date, total_price, created_at
		 FROM bookings WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	result := []booking.Booking{}
	for rows.Next() {
		var b booking.Booking
		if err := rows.Scan(&b.ID, &b.PropertyID, &b.UserID, &b.CheckInDate, &b.CheckOutDate, &b.TotalPrice, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning booking: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bookings: %w", err)
	}
	return result, nil
}

func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique
}
