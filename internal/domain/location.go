package domain

type LocationType string

const (
	LocationHome     LocationType = "home"
	LocationWork     LocationType = "work"
	LocationFavorite LocationType = "favorite"
)

// SavedLocation is a user-saved point (home, work, favorite). Owned by the
// backend; this service reads it for proximity and commute routing only.
type SavedLocation struct {
	ID    int64        `json:"id"`
	Label string       `json:"label"`
	Type  LocationType `json:"type"`
	Lat   float64      `json:"lat" validate:"required,lat"`
	Lon   float64      `json:"lon" validate:"required,lng"`
}

// CommuteKind tells the client which flow to open after a proximity check.
type CommuteKind string

const (
	CommuteToWork CommuteKind = "to_work" // user is near home
	CommuteToHome CommuteKind = "to_home" // user is near work
	CommuteManual CommuteKind = "manual"  // not near any saved location
)

// CommuteSuggestion is the outcome of the smart-commute policy: when the user
// stands near a saved home the suggested destination is the nearest work
// location, and vice versa. Origin is the matched saved location, nil for the
// manual fallback.
type CommuteSuggestion struct {
	Kind        CommuteKind    `json:"kind"`
	Origin      *SavedLocation `json:"origin,omitempty"`
	Destination *SavedLocation `json:"destination,omitempty"`
}
