package property

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// RemoteProperty is a listing row as stored by the remote backend.
type RemoteProperty struct {
	ID                int64     `json:"id"`
	CreatedAt         Timestamp `json:"created_at"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	PricePerNight     float64   `json:"price_per_night"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	Country           string    `json:"country"`
	Latitude          *float64  `json:"latitude"`
	Longitude         *float64  `json:"longitude"`
	NumberOfGuests    int       `json:"number_of_guests"`
	NumberOfBedrooms  int       `json:"number_of_bedrooms"`
	NumberOfBeds      int       `json:"number_of_beds"`
	NumberOfBathrooms float64   `json:"number_of_bathrooms"`
	UserID            int64     `json:"user_id"`
	Amenity           int64     `json:"amenity"`
}

// FromRemote maps a remote row into the listing view-model. It is a pure
// function of its input and the static tables in this package.
func FromRemote(r RemoteProperty) Property {
	title := strings.ToLower(r.Title)
	city := strings.ToLower(r.City)
	ph := PlaceholderFor(r.ID)
	rating := formatDecimal(ph.Rating)
	avatar := ph.HostAvatar

	return Property{
		ID:                 r.ID,
		Title:              r.Title,
		Description:        r.Description,
		Location:           r.City + ", " + r.State,
		Address:            r.Address,
		City:               r.City,
		State:              r.State,
		Country:            r.Country,
		PricePerNight:      formatDecimal(r.PricePerNight),
		Rating:             &rating,
		ReviewCount:        ph.ReviewCount,
		Images:             imagesFor(city),
		Amenities:          amenitiesFor(city, title),
		PropertyType:       propertyTypeFor(title, r.NumberOfBedrooms),
		MaxGuests:          r.NumberOfGuests,
		Bedrooms:           r.NumberOfBedrooms,
		Beds:               r.NumberOfBeds,
		Bathrooms:          int(math.Floor(r.NumberOfBathrooms)),
		HostName:           ph.HostName,
		HostAvatar:         &avatar,
		HostIsSuperhost:    ph.Superhost,
		Latitude:           optionalDecimal(r.Latitude),
		Longitude:          optionalDecimal(r.Longitude),
		Category:           categoryFor(city, title, r.PricePerNight),
		IsGuestFavorite:    ph.GuestFavorite,
		HasUniqueStay:      r.PricePerNight > 1000 || strings.Contains(title, "treehouse"),
		CancellationPolicy: DefaultCancellationPolicy,
		CheckInTime:        DefaultCheckInTime,
		CheckOutTime:       DefaultCheckOutTime,
		CreatedAt:          r.CreatedAt.Time(),
	}
}

// ToRemote maps a create payload onto the remote row shape. The location
// is split into city and state on the first comma; unparseable decimals are
// sent as zero or null.
func ToRemote(n NewProperty) RemoteProperty {
	city, state, _ := strings.Cut(n.Location, ",")
	price, _ := parseDecimal(n.PricePerNight)
	return RemoteProperty{
		Title:             n.Title,
		Description:       n.Description,
		PricePerNight:     price,
		City:              strings.TrimSpace(city),
		State:             strings.TrimSpace(state),
		Latitude:          decimalPtr(n.Latitude),
		Longitude:         decimalPtr(n.Longitude),
		NumberOfGuests:    n.MaxGuests,
		NumberOfBedrooms:  n.Bedrooms,
		NumberOfBeds:      n.Bedrooms,
		NumberOfBathrooms: float64(n.Bathrooms),
	}
}

// propertyTypeFor expects a lower-cased title.
func propertyTypeFor(title string, bedrooms int) string {
	switch {
	case strings.Contains(title, "villa"):
		return "Villa"
	case strings.Contains(title, "cabin"):
		return "Cabin"
	case strings.Contains(title, "loft"):
		return "Loft"
	case strings.Contains(title, "treehouse"):
		return "Treehouse"
	case bedrooms > 2:
		return "House"
	default:
		return "Apartment"
	}
}

// amazingPoolsThreshold is the nightly price above which an otherwise
// uncategorised listing is shown under amazing pools.
const amazingPoolsThreshold = 800

// categoryFor expects lower-cased city and title.
func categoryFor(city, title string, price float64) Category {
	switch {
	case strings.Contains(city, "beach") || strings.Contains(city, "miami"):
		return CategoryBeachfront
	case strings.Contains(city, "aspen") || strings.Contains(title, "cabin"):
		return CategoryCabins
	case strings.Contains(title, "treehouse"):
		return CategoryTreehouses
	case strings.Contains(city, "boston") || strings.Contains(title, "historic"):
		return CategoryDesign
	case price > amazingPoolsThreshold:
		return CategoryAmazingPools
	default:
		return CategoryTrending
	}
}

const fallbackImageKey = "malibu"

var cityImages = map[string][]string{
	"malibu": {
		unsplash("photo-1571896349842-33c89424de2d", 800, 600),
		unsplash("photo-1582268611958-ebfd161ef9cf", 800, 600),
		unsplash("photo-1564013799919-ab600027ffc6", 800, 600),
	},
	"aspen": {
		unsplash("photo-1449824913935-59a10b8d2000", 800, 600),
		unsplash("photo-1441974231531-c6227db76b6e", 800, 600),
		unsplash("photo-1506905925346-21bda4d32df4", 800, 600),
	},
	"brooklyn": {
		unsplash("photo-1502672260266-1c1ef2d93688", 800, 600),
		unsplash("photo-1586023492125-27b2c045efd7", 800, 600),
		unsplash("photo-1560448204-e02f11c3d0e2", 800, 600),
	},
	"miami": {
		unsplash("photo-1540555700478-4be289fbecef", 800, 600),
		unsplash("photo-1571896349842-33c89424de2d", 800, 600),
		unsplash("photo-1566073771259-6a8506099945", 800, 600),
	},
	"boston": {
		unsplash("photo-1564013799919-ab600027ffc6", 800, 600),
		unsplash("photo-1502672260266-1c1ef2d93688", 800, 600),
		unsplash("photo-1484154218962-a197022b5858", 800, 600),
	},
	"mendocino": {
		unsplash("photo-1441974231531-c6227db76b6e", 800, 600),
		unsplash("photo-1472214103451-9374bd1c798e", 800, 600),
		unsplash("photo-1501594907352-04cda38ebc29", 800, 600),
	},
}

// imageKey normalises a lower-cased city: whitespace removed, then the
// first "beach" dropped ("Miami Beach" → "miami").
func imageKey(city string) string {
	key := strings.Join(strings.Fields(city), "")
	return strings.Replace(key, "beach", "", 1)
}

func imagesFor(city string) []string {
	imgs, ok := cityImages[imageKey(city)]
	if !ok {
		imgs = cityImages[fallbackImageKey]
	}
	return append([]string(nil), imgs...)
}

func amenitiesFor(city, title string) []string {
	base := []string{"WiFi", "Kitchen"}
	switch {
	case strings.Contains(city, "beach") || strings.Contains(city, "miami"):
		return append(base, "Ocean view", "Beach access", "Pool", "Air conditioning")
	case strings.Contains(city, "aspen") || strings.Contains(city, "mountain"):
		return append(base, "Fireplace", "Mountain view", "Hot tub", "Heating")
	case strings.Contains(city, "brooklyn") || strings.Contains(city, "boston"):
		return append(base, "Workspace", "Near subway", "City view", "Heating")
	case strings.Contains(title, "treehouse"):
		return append(base, "Forest view", "Unique experience", "Deck", "Nature sounds")
	default:
		return append(base, "Free parking", "Air conditioning")
	}
}

func unsplash(photo string, w, h int) string {
	return "https://images.unsplash.com/" + photo +
		"?ixlib=rb-4.0.3&auto=format&fit=crop&w=" + strconv.Itoa(w) + "&h=" + strconv.Itoa(h)
}

// formatDecimal renders f with the fewest digits that round-trip
// (1200 → "1200", 4.72 → "4.72").
func formatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func optionalDecimal(f *float64) *string {
	if f == nil {
		return nil
	}
	s := formatDecimal(*f)
	return &s
}

func decimalPtr(s *string) *float64 {
	if s == nil {
		return nil
	}
	f, err := parseDecimal(*s)
	if err != nil {
		return nil
	}
	return &f
}

func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Timestamp is a remote creation time. The backend sends either an RFC 3339
// string or epoch milliseconds; anything else decodes to the zero time.
type Timestamp struct {
	t time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t.UTC()}
}

// Time returns the decoded time in UTC.
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	ts.t = time.Time{}
	if raw == "" || raw == "null" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		ts.t = t.UTC()
	} else if ms, err := strconv.ParseFloat(raw, 64); err == nil {
		ts.t = time.UnixMilli(int64(ms)).UTC()
	}
	return nil
}

// MarshalJSON encodes the time as epoch milliseconds, or null when unset.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(ts.t.UnixMilli(), 10)), nil
}
