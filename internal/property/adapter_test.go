package property

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func remoteFixture() RemoteProperty {
	lat, lng := 34.0259, -118.7798
	return RemoteProperty{
		ID:                1,
		CreatedAt:         NewTimestamp(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)),
		Title:             "Luxury Beachfront Villa",
		Description:       "Ocean views",
		PricePerNight:     1200,
		Address:           "1 Pacific Coast Hwy",
		City:              "Malibu",
		State:             "California",
		Country:           "USA",
		Latitude:          &lat,
		Longitude:         &lng,
		NumberOfGuests:    8,
		NumberOfBedrooms:  4,
		NumberOfBeds:      5,
		NumberOfBathrooms: 3.5,
		UserID:            7,
	}
}

func TestFromRemoteBasicFields(t *testing.T) {
	p := FromRemote(remoteFixture())

	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "Malibu, California", p.Location)
	assert.Equal(t, "1200", p.PricePerNight)
	assert.Equal(t, "Villa", p.PropertyType)
	assert.Equal(t, 8, p.MaxGuests)
	assert.Equal(t, 4, p.Bedrooms)
	assert.Equal(t, 3, p.Bathrooms, "bathrooms are floored")
	require.NotNil(t, p.Latitude)
	assert.Equal(t, "34.0259", *p.Latitude)
	assert.Equal(t, "flexible", p.CancellationPolicy)
	assert.Equal(t, "3:00 PM", p.CheckInTime)
	assert.Equal(t, "11:00 AM", p.CheckOutTime)
	assert.True(t, p.HasUniqueStay, "price above 1000")
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), p.CreatedAt)
}

func TestFromRemoteMalibuGoesToAmazingPools(t *testing.T) {
	// Malibu is not a recognised beach city and the title has no category
	// keyword, so the price rule decides.
	p := FromRemote(remoteFixture())
	assert.Equal(t, CategoryAmazingPools, p.Category)
}

func TestFromRemoteMissingCoordinatesAreNull(t *testing.T) {
	r := remoteFixture()
	r.Latitude = nil
	r.Longitude = nil

	p := FromRemote(r)
	assert.Nil(t, p.Latitude)
	assert.Nil(t, p.Longitude)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"latitude":null`)
	assert.Contains(t, string(data), `"longitude":null`)
}

func TestPropertyTypeFor(t *testing.T) {
	tests := []struct {
		title    string
		bedrooms int
		want     string
	}{
		{"Seaside VILLA", 1, "Villa"},
		{"Cozy Cabin", 5, "Cabin"},
		{"Cabin villa", 1, "Villa"},
		{"SoHo Loft", 1, "Loft"},
		{"Redwood Treehouse", 1, "Treehouse"},
		{"Family home", 3, "House"},
		{"Studio", 2, "Apartment"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			r := remoteFixture()
			r.Title = tt.title
			r.NumberOfBedrooms = tt.bedrooms
			assert.Equal(t, tt.want, FromRemote(r).PropertyType)
		})
	}
}

func TestCategoryPriority(t *testing.T) {
	tests := []struct {
		name  string
		city  string
		title string
		price float64
		want  Category
	}{
		{"beach city", "Miami Beach", "Historic cabin", 100, CategoryBeachfront},
		{"miami token", "Miami", "Flat", 100, CategoryBeachfront},
		{"aspen", "Aspen", "Treehouse", 100, CategoryCabins},
		{"cabin title", "Denver", "Quiet Cabin", 100, CategoryCabins},
		{"treehouse", "Mendocino", "Forest Treehouse", 100, CategoryTreehouses},
		{"boston", "Boston", "Flat", 900, CategoryDesign},
		{"historic", "Denver", "Historic Flat", 900, CategoryDesign},
		{"expensive", "Denver", "Flat", 800.01, CategoryAmazingPools},
		{"threshold is exclusive", "Denver", "Flat", 800, CategoryTrending},
		{"default", "Denver", "Flat", 100, CategoryTrending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := remoteFixture()
			r.City = tt.city
			r.Title = tt.title
			r.PricePerNight = tt.price
			assert.Equal(t, tt.want, FromRemote(r).Category)
		})
	}
}

func TestImagesLookup(t *testing.T) {
	tests := []struct {
		city string
		key  string
	}{
		{"Aspen", "aspen"},
		{"Miami Beach", "miami"},
		{"  Bro oklyn ", "brooklyn"},
		{"Nowhere", "malibu"},
	}
	for _, tt := range tests {
		t.Run(tt.city, func(t *testing.T) {
			r := remoteFixture()
			r.City = tt.city
			assert.Equal(t, cityImages[tt.key], FromRemote(r).Images)
		})
	}
}

func TestAmenitiesRules(t *testing.T) {
	r := remoteFixture()
	r.City = "Aspen"
	assert.Equal(t, []string{"WiFi", "Kitchen", "Fireplace", "Mountain view", "Hot tub", "Heating"}, FromRemote(r).Amenities)

	r.City = "Portland"
	r.Title = "Canopy Treehouse"
	assert.Equal(t, []string{"WiFi", "Kitchen", "Forest view", "Unique experience", "Deck", "Nature sounds"}, FromRemote(r).Amenities)

	r.Title = "Flat"
	assert.Equal(t, []string{"WiFi", "Kitchen", "Free parking", "Air conditioning"}, FromRemote(r).Amenities)
}

func TestFromRemoteDoesNotShareTables(t *testing.T) {
	p := FromRemote(remoteFixture())
	p.Images[0] = "mutated"
	assert.NotEqual(t, "mutated", FromRemote(remoteFixture()).Images[0])
}

func TestFromRemoteIsDeterministic(t *testing.T) {
	for id := int64(-3); id < 30; id++ {
		r := remoteFixture()
		r.ID = id
		a, err := json.Marshal(FromRemote(r))
		require.NoError(t, err)
		b, err := json.Marshal(FromRemote(r))
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b))
	}
}

func TestFromRemoteInvariants(t *testing.T) {
	cities := []string{"Malibu", "Miami", "Aspen", "Boston", "", "Nowhere"}
	titles := []string{"", "Villa", "Treehouse", "historic loft"}
	for i, city := range cities {
		for j, title := range titles {
			r := RemoteProperty{ID: int64(i*10 + j), City: city, Title: title, PricePerNight: float64(i * 300)}
			p := FromRemote(r)
			assert.NotEmpty(t, p.Images)
			assert.True(t, p.Category.Valid(), "category %q", p.Category)
			require.NotNil(t, p.Rating)
			rating, err := parseDecimal(*p.Rating)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, rating, 0.0)
			assert.LessOrEqual(t, rating, 5.0)
		}
	}
}

func TestPlaceholderFor(t *testing.T) {
	p := PlaceholderFor(0)
	assert.Equal(t, 4.72, p.Rating)
	assert.Equal(t, "Sarah", p.HostName)
	assert.True(t, p.Superhost)
	assert.True(t, p.GuestFavorite)

	p = PlaceholderFor(1)
	assert.Equal(t, "Mike", p.HostName)
	assert.False(t, p.Superhost)
	assert.False(t, p.GuestFavorite)

	// Every residue has a full row, including the last one.
	p = PlaceholderFor(6)
	assert.NotEmpty(t, p.HostName)
	assert.NotEmpty(t, p.HostAvatar)

	assert.Equal(t, PlaceholderFor(2), PlaceholderFor(9))
	assert.Equal(t, PlaceholderFor(1), PlaceholderFor(-1))
	assert.Equal(t, PlaceholderFor(6), PlaceholderFor(-13))
}

func TestTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"epoch millis", `1700000000000`, time.UnixMilli(1700000000000).UTC()},
		{"rfc3339", `"2025-03-01T12:00:00Z"`, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)},
		{"null", `null`, time.Time{}},
		{"garbage", `"yesterday"`, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &ts))
			assert.True(t, tt.want.Equal(ts.Time()), "got %v want %v", ts.Time(), tt.want)
		})
	}
}

func TestToRemote(t *testing.T) {
	n := SeedCatalog()[0]
	r := ToRemote(n)

	assert.Equal(t, "Malibu", r.City)
	assert.Equal(t, "California", r.State)
	assert.Equal(t, 1200.0, r.PricePerNight)
	assert.Equal(t, n.MaxGuests, r.NumberOfGuests)
	require.NotNil(t, r.Latitude)
	assert.InDelta(t, 34.0259, *r.Latitude, 1e-9)

	n.Latitude = strPtr("north")
	n.Location = "Nowhere"
	r = ToRemote(n)
	assert.Nil(t, r.Latitude)
	assert.Equal(t, "Nowhere", r.City)
	assert.Empty(t, r.State)
}
