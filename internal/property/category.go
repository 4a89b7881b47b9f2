package property

import "strings"

// Category is a browse facet. The value is the token clients filter by.
type Category string

const (
	CategoryAmazingViews Category = "amazing-views"
	CategoryBeachfront   Category = "beachfront"
	CategoryCabins       Category = "cabins"
	CategoryTrending     Category = "trending"
	CategoryAmazingPools Category = "amazing-pools"
	CategoryTreehouses   Category = "treehouses"
	CategoryDesign       Category = "design"
)

var categoryLabels = map[Category]string{
	CategoryAmazingViews: "Amazing views",
	CategoryBeachfront:   "Beachfront",
	CategoryCabins:       "Cabins",
	CategoryTrending:     "Trending",
	CategoryAmazingPools: "Amazing pools",
	CategoryTreehouses:   "Treehouses",
	CategoryDesign:       "Design",
}

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryAmazingViews,
		CategoryBeachfront,
		CategoryCabins,
		CategoryTrending,
		CategoryAmazingPools,
		CategoryTreehouses,
		CategoryDesign,
	}
}

// Valid returns true if c is one of the fixed categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display label, or the raw token for unknown values.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// ParseCategory accepts a token ("amazing-pools") or a display label
// ("Amazing pools", any case).
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if c := Category(s); c.Valid() {
		return c, true
	}
	for _, c := range Categories() {
		if strings.EqualFold(categoryLabels[c], s) {
			return c, true
		}
	}
	return "", false
}
