package property

// Placeholder is the stand-in rating and host identity given to remote
// listings. The remote backend has no review or host aggregation yet, so
// these values are fake and keyed only by listing ID: two listings whose
// IDs share a residue get identical ratings and hosts.
type Placeholder struct {
	Rating        float64
	ReviewCount   int
	HostName      string
	HostAvatar    string
	Superhost     bool
	GuestFavorite bool
}

// Parallel tables; all must have the same length.
var (
	placeholderRatings = []float64{4.72, 4.85, 4.91, 4.96, 4.88, 4.79, 4.83}
	placeholderReviews = []int{89, 127, 156, 203, 91, 134, 167}
	placeholderHosts   = []string{"Sarah", "Mike", "Emma", "Carlos", "Jennifer", "Duncan", "Rachel"}
	placeholderAvatars = []string{
		unsplash("photo-1494790108755-2616b612b786", 150, 150),
		unsplash("photo-1507003211169-0a1dd7228f2d", 150, 150),
		unsplash("photo-1438761681033-6461ffad8d80", 150, 150),
		unsplash("photo-1500648767791-00dcc994a43e", 150, 150),
		unsplash("photo-1544005313-94ddf0286df2", 150, 150),
		unsplash("photo-1472099645785-5658abf4ff4e", 150, 150),
		unsplash("photo-1534528741775-53994a69daeb", 150, 150),
	}
)

// PlaceholderFor returns the placeholder values for a listing ID, indexed
// by |id| mod the table length.
func PlaceholderFor(id int64) Placeholder {
	i := id % int64(len(placeholderRatings))
	if i < 0 {
		i = -i
	}
	return Placeholder{
		Rating:        placeholderRatings[i],
		ReviewCount:   placeholderReviews[i],
		HostName:      placeholderHosts[i],
		HostAvatar:    placeholderAvatars[i],
		Superhost:     i%2 == 0,
		GuestFavorite: i%3 == 0,
	}
}
