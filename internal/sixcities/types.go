package sixcities

import "time"

// PlaceType values the backend accepts for a listing.
const (
	TypeApartment = "apartment"
	TypeRoom      = "room"
	TypeHouse     = "house"
	TypeHotel     = "hotel"
)

// Location is a geo coordinate with a default map zoom.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

// City names a city and anchors it on the map.
type City struct {
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

// Place is the card-level listing returned by /offers, /offers/{id}/nearby
// and /favorite/{id}/{status}.
type Place struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	Price        int      `json:"price"`
	City         City     `json:"city"`
	Location     Location `json:"location"`
	IsFavorite   bool     `json:"isFavorite"`
	IsPremium    bool     `json:"isPremium"`
	Rating       float64  `json:"rating"`
	PreviewImage string   `json:"previewImage"`
}

// UserSummary is the short user record embedded in hosts and review authors.
type UserSummary struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
}

// PlaceDetail is the full record returned by /offers/{id}.
type PlaceDetail struct {
	Place
	Description string      `json:"description"`
	Bedrooms    int         `json:"bedrooms"`
	Goods       []string    `json:"goods"`
	Host        UserSummary `json:"host"`
	Images      []string    `json:"images"`
	MaxAdults   int         `json:"maxAdults"`
}

// Review is a single comment on a listing.
type Review struct {
	ID      string      `json:"id"`
	Date    string      `json:"date"`
	User    UserSummary `json:"user"`
	Comment string      `json:"comment"`
	Rating  int         `json:"rating"`
}

// ParsedDate returns the review date as time.Time when possible.
func (r Review) ParsedDate() time.Time {
	if r.Date == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, r.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Profile is the authenticated user record returned by /login.
type Profile struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
	Email     string `json:"email"`
	Token     string `json:"token"`
}

// Credentials is the /login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CommentPayload is the POST /comments/{id} request body.
type CommentPayload struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}
