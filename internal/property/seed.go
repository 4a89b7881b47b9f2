package property

func strPtr(s string) *string { return &s }

// SeedCatalog returns the sample listings local stores start with. Every
// category appears at least once.
func SeedCatalog() []NewProperty {
	return []NewProperty{
		{
			Title:         "Luxury Beachfront Villa",
			Description:   "Beautiful beachfront villa with infinity pool overlooking the ocean. Perfect for a romantic getaway or family vacation.",
			Location:      "Malibu, California",
			PricePerNight: "1200.00",
			Rating:        strPtr("4.98"),
			ReviewCount:   124,
			Images: []string{
				unsplash("photo-1571896349842-33c89424de2d", 800, 600),
				unsplash("photo-1502672260266-1c1ef2d93688", 800, 600),
				unsplash("photo-1600585154340-be6161a56a0c", 800, 600),
			},
			Amenities:       []string{"WiFi", "Pool", "Free parking", "Kitchen", "Air conditioning", "Ocean view"},
			PropertyType:    "Villa",
			MaxGuests:       8,
			Bedrooms:        4,
			Bathrooms:       3,
			HostName:        "Sarah",
			HostAvatar:      strPtr(unsplash("photo-1494790108755-2616b612b786", 150, 150)),
			HostIsSuperhost: true,
			Latitude:        strPtr("34.0259"),
			Longitude:       strPtr("-118.7798"),
			Category:        CategoryAmazingViews,
			IsGuestFavorite: true,
		},
		{
			Title:         "Mountain Cabin Retreat",
			Description:   "Rustic mountain cabin surrounded by pine trees and forest. Perfect for hiking and outdoor adventures.",
			Location:      "Aspen, Colorado",
			PricePerNight: "450.00",
			Rating:        strPtr("4.87"),
			ReviewCount:   89,
			Images: []string{
				unsplash("photo-1449824913935-59a10b8d2000", 800, 600),
				unsplash("photo-1441974231531-c6227db76b6e", 800, 600),
			},
			Amenities:    []string{"WiFi", "Fireplace", "Kitchen", "Mountain view", "Hiking trails"},
			PropertyType: "Cabin",
			MaxGuests:    6,
			Bedrooms:     3,
			Bathrooms:    2,
			HostName:     "Mike",
			HostAvatar:   strPtr(unsplash("photo-1507003211169-0a1dd7228f2d", 150, 150)),
			Latitude:     strPtr("39.1911"),
			Longitude:    strPtr("-106.8175"),
			Category:     CategoryCabins,
		},
		{
			Title:         "Urban Loft Downtown",
			Description:   "Modern urban loft with exposed brick walls and large windows in the heart of the city.",
			Location:      "Brooklyn, New York",
			PricePerNight: "320.00",
			Rating:        strPtr("4.92"),
			ReviewCount:   67,
			Images: []string{
				unsplash("photo-1502672260266-1c1ef2d93688", 800, 600),
				unsplash("photo-1586023492125-27b2c045efd7", 800, 600),
			},
			Amenities:       []string{"WiFi", "Kitchen", "City view", "Workspace", "Near subway"},
			PropertyType:    "Loft",
			MaxGuests:       4,
			Bedrooms:        2,
			Bathrooms:       1,
			HostName:        "Emma",
			HostAvatar:      strPtr(unsplash("photo-1438761681033-6461ffad8d80", 150, 150)),
			HostIsSuperhost: true,
			Latitude:        strPtr("40.6782"),
			Longitude:       strPtr("-73.9442"),
			Category:        CategoryTrending,
		},
		{
			Title:           "Tropical Resort Bungalow",
			Description:     "Overwater bungalow with direct access to crystal clear lagoon and pristine coral reefs.",
			Location:        "Bora Bora, French Polynesia",
			PricePerNight:   "2500.00",
			Rating:          strPtr("5.00"),
			ReviewCount:     43,
			Images:          []string{unsplash("photo-1540555700478-4be289fbecef", 800, 600)},
			Amenities:       []string{"WiFi", "Private beach", "Snorkeling gear", "Room service", "Spa access"},
			PropertyType:    "Bungalow",
			MaxGuests:       2,
			Bedrooms:        1,
			Bathrooms:       1,
			HostName:        "Jean-Pierre",
			HostAvatar:      strPtr(unsplash("photo-1472099645785-5658abf4ff4e", 150, 150)),
			HostIsSuperhost: true,
			Latitude:        strPtr("-16.5004"),
			Longitude:       strPtr("-151.7415"),
			Category:        CategoryBeachfront,
			HasUniqueStay:   true,
		},
		{
			Title:         "Desert Modern Villa",
			Description:   "Contemporary desert villa with infinity pool and panoramic mountain views.",
			Location:      "Scottsdale, Arizona",
			PricePerNight: "680.00",
			Rating:        strPtr("4.89"),
			ReviewCount:   92,
			Images:        []string{unsplash("photo-1600585154340-be6161a56a0c", 800, 600)},
			Amenities:     []string{"WiFi", "Pool", "Desert view", "Hot tub", "Golf course access"},
			PropertyType:  "Villa",
			MaxGuests:     6,
			Bedrooms:      3,
			Bathrooms:     3,
			HostName:      "Carlos",
			HostAvatar:    strPtr(unsplash("photo-1500648767791-00dcc994a43e", 150, 150)),
			Latitude:      strPtr("33.4942"),
			Longitude:     strPtr("-111.9261"),
			Category:      CategoryAmazingPools,
		},
		{
			Title:         "Lakeside Cottage",
			Description:   "Charming lakeside cottage with wooden dock and scenic lake views. Perfect for fishing and boating.",
			Location:      "Lake Tahoe, California",
			PricePerNight: "280.00",
			Rating:        strPtr("4.76"),
			ReviewCount:   156,
			Images:        []string{unsplash("photo-1506905925346-21bda4d32df4", 800, 600)},
			Amenities:     []string{"WiFi", "Lake access", "Kayaks", "Fireplace", "Kitchen"},
			PropertyType:  "Cottage",
			MaxGuests:     4,
			Bedrooms:      2,
			Bathrooms:     1,
			HostName:      "Jennifer",
			HostAvatar:    strPtr(unsplash("photo-1544005313-94ddf0286df2", 150, 150)),
			Latitude:      strPtr("39.0968"),
			Longitude:     strPtr("-120.0324"),
			Category:      CategoryAmazingViews,
		},
		{
			Title:           "Historic Edinburgh Townhouse",
			Description:     "Beautiful historic townhouse in the heart of Edinburgh's Old Town with classic architecture.",
			Location:        "Edinburgh, Scotland",
			PricePerNight:   "195.00",
			Rating:          strPtr("4.94"),
			ReviewCount:     78,
			Images:          []string{unsplash("photo-1564013799919-ab600027ffc6", 800, 600)},
			Amenities:       []string{"WiFi", "Historic charm", "City center", "Garden", "Kitchen"},
			PropertyType:    "Townhouse",
			MaxGuests:       6,
			Bedrooms:        3,
			Bathrooms:       2,
			HostName:        "Duncan",
			HostAvatar:      strPtr(unsplash("photo-1507003211169-0a1dd7228f2d", 150, 150)),
			HostIsSuperhost: true,
			Latitude:        strPtr("55.9533"),
			Longitude:       strPtr("-3.1883"),
			Category:        CategoryDesign,
		},
		{
			Title:         "Forest Treehouse",
			Description:   "Unique treehouse accommodation nestled high in the forest canopy with breathtaking views.",
			Location:      "Olympic Peninsula, Washington",
			PricePerNight: "175.00",
			Rating:        strPtr("4.83"),
			ReviewCount:   234,
			Images:        []string{unsplash("photo-1441974231531-c6227db76b6e", 800, 600)},
			Amenities:     []string{"WiFi", "Forest views", "Hiking trails", "Unique experience", "Kitchen"},
			PropertyType:  "Treehouse",
			MaxGuests:     2,
			Bedrooms:      1,
			Bathrooms:     1,
			HostName:      "Rachel",
			HostAvatar:    strPtr(unsplash("photo-1494790108755-2616b612b786", 150, 150)),
			Latitude:      strPtr("47.8021"),
			Longitude:     strPtr("-123.6044"),
			Category:      CategoryTreehouses,
			HasUniqueStay: true,
		},
	}
}
