// Package wishlist defines saved-listing entries.
package wishlist

import "time"

// Item records that a user saved a listing. A (UserID, PropertyID) pair
// appears at most once per store.
type Item struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	PropertyID int64     `json:"propertyId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Contains reports whether items include propertyID.
func Contains(items []Item, propertyID int64) bool {
	for _, it := range items {
		if it.PropertyID == propertyID {
			return true
		}
	}
	return false
}
