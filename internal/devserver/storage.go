package devserver

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
)

// Storage is the in-memory backing store for the fixture backend. Favorites
// and sessions are tracked per token, so two signed-in users see independent
// favorite flags, like the hosted backend.
type Storage struct {
	mu        sync.RWMutex
	offers    []sixcities.PlaceDetail
	comments  map[string][]sixcities.Review
	sessions  map[string]sixcities.Profile
	favorites map[string]map[string]bool // token -> offer id -> saved
	now       func() time.Time
}

// NewStorage returns a Storage seeded with fixture offers.
func NewStorage() *Storage {
	s := &Storage{
		comments:  make(map[string][]sixcities.Review),
		sessions:  make(map[string]sixcities.Profile),
		favorites: make(map[string]map[string]bool),
		now:       time.Now,
	}
	s.seed()
	return s
}

// Offers returns card-level projections of every offer, with the favorite
// flag resolved for the given session token.
func (s *Storage) Offers(token string) []sixcities.Place {
	s.mu.RLock()
	defer s.mu.RUnlock()

	places := make([]sixcities.Place, 0, len(s.offers))
	for _, offer := range s.offers {
		places = append(places, s.projectLocked(offer, token))
	}
	return places
}

// Offer returns the full record for one offer.
func (s *Storage) Offer(id, token string) (sixcities.PlaceDetail, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, offer := range s.offers {
		if offer.ID == id {
			detail := offer
			detail.Place = s.projectLocked(offer, token)
			return detail, true
		}
	}
	return sixcities.PlaceDetail{}, false
}

// Nearby returns up to three other offers in the same city.
func (s *Storage) Nearby(id, token string) ([]sixcities.Place, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var city string
	found := false
	for _, offer := range s.offers {
		if offer.ID == id {
			city = offer.City.Name
			found = true
			break
		}
	}
	if !found {
		return nil, false
	}

	var nearby []sixcities.Place
	for _, offer := range s.offers {
		if offer.ID == id || offer.City.Name != city {
			continue
		}
		nearby = append(nearby, s.projectLocked(offer, token))
		if len(nearby) == 3 {
			break
		}
	}
	return nearby, true
}

// Comments returns the reviews for an offer.
func (s *Storage) Comments(id string) ([]sixcities.Review, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.offerExistsLocked(id) {
		return nil, false
	}
	reviews := make([]sixcities.Review, len(s.comments[id]))
	copy(reviews, s.comments[id])
	return reviews, true
}

// AddComment stores a review authored by the session behind token.
func (s *Storage) AddComment(id, token string, payload sixcities.CommentPayload) (sixcities.Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.offerExistsLocked(id) {
		return sixcities.Review{}, false
	}
	profile := s.sessions[token]
	review := sixcities.Review{
		ID:   uuid.NewString(),
		Date: s.now().UTC().Format(time.RFC3339),
		User: sixcities.UserSummary{
			Name:      profile.Name,
			AvatarURL: profile.AvatarURL,
			IsPro:     profile.IsPro,
		},
		Comment: payload.Comment,
		Rating:  payload.Rating,
	}
	s.comments[id] = append(s.comments[id], review)
	return review, true
}

// SetFavorite marks or clears an offer for the session behind token and
// returns the updated card projection.
func (s *Storage) SetFavorite(id, token string, favorite bool) (sixcities.Place, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, offer := range s.offers {
		if offer.ID != id {
			continue
		}
		if s.favorites[token] == nil {
			s.favorites[token] = make(map[string]bool)
		}
		s.favorites[token][id] = favorite
		return s.projectLocked(offer, token), true
	}
	return sixcities.Place{}, false
}

// Login creates a session for the given email and returns the profile with
// a fresh token.
func (s *Storage) Login(email string) sixcities.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		name = email[:at]
	}
	profile := sixcities.Profile{
		Name:      name,
		AvatarURL: fmt.Sprintf("https://i.pravatar.cc/128?u=%s", email),
		Email:     email,
		Token:     uuid.NewString(),
	}
	s.sessions[profile.Token] = profile
	return profile
}

// Session resolves a token to its profile.
func (s *Storage) Session(token string) (sixcities.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.sessions[token]
	return profile, ok
}

func (s *Storage) offerExistsLocked(id string) bool {
	for _, offer := range s.offers {
		if offer.ID == id {
			return true
		}
	}
	return false
}

func (s *Storage) projectLocked(offer sixcities.PlaceDetail, token string) sixcities.Place {
	place := offer.Place
	place.IsFavorite = s.favorites[token][offer.ID]
	return place
}

func (s *Storage) seed() {
	cities := map[string]sixcities.City{
		"Paris":      {Name: "Paris", Location: sixcities.Location{Latitude: 48.85661, Longitude: 2.351499, Zoom: 13}},
		"Cologne":    {Name: "Cologne", Location: sixcities.Location{Latitude: 50.938361, Longitude: 6.959974, Zoom: 13}},
		"Brussels":   {Name: "Brussels", Location: sixcities.Location{Latitude: 50.846557, Longitude: 4.351697, Zoom: 13}},
		"Amsterdam":  {Name: "Amsterdam", Location: sixcities.Location{Latitude: 52.37454, Longitude: 4.897976, Zoom: 13}},
		"Hamburg":    {Name: "Hamburg", Location: sixcities.Location{Latitude: 53.550341, Longitude: 10.000654, Zoom: 13}},
		"Dusseldorf": {Name: "Dusseldorf", Location: sixcities.Location{Latitude: 51.225402, Longitude: 6.776314, Zoom: 13}},
	}

	type seedOffer struct {
		title   string
		city    string
		kind    string
		price   int
		rating  float64
		premium bool
	}
	seeds := []seedOffer{
		{"Beautiful & luxurious studio at great location", "Paris", sixcities.TypeApartment, 120, 4.8, true},
		{"Wood and stone place", "Paris", sixcities.TypeRoom, 80, 4.0, false},
		{"Canal view Prinsengracht", "Amsterdam", sixcities.TypeApartment, 132, 4.2, false},
		{"Nice, cozy, warm big bed apartment", "Amsterdam", sixcities.TypeHotel, 180, 5.0, true},
		{"Loft near the cathedral", "Cologne", sixcities.TypeHouse, 143, 4.5, false},
		{"Quiet room by the Grand Place", "Brussels", sixcities.TypeRoom, 67, 3.9, false},
		{"Harbour view penthouse", "Hamburg", sixcities.TypeApartment, 210, 4.7, true},
		{"Old town hideaway", "Dusseldorf", sixcities.TypeHouse, 98, 4.1, false},
	}

	for i, seed := range seeds {
		city := cities[seed.city]
		offset := float64(i+1) * 0.003
		s.offers = append(s.offers, sixcities.PlaceDetail{
			Place: sixcities.Place{
				ID:      uuid.NewString(),
				Title:   seed.title,
				Type:    seed.kind,
				Price:   seed.price,
				City:    city,
				Location: sixcities.Location{
					Latitude:  city.Location.Latitude + offset,
					Longitude: city.Location.Longitude - offset,
					Zoom:      16,
				},
				IsPremium:    seed.premium,
				Rating:       seed.rating,
				PreviewImage: fmt.Sprintf("https://14.design.htmlacademy.pro/static/hotel/%d.jpg", i+1),
			},
			Description: "A quiet cozy place that hides behind a river by the unique lightness of the city.",
			Bedrooms:    1 + i%3,
			Goods:       []string{"Wi-Fi", "Heating", "Kitchen", "Washing machine"},
			Host: sixcities.UserSummary{
				Name:      "Angelina",
				AvatarURL: "https://14.design.htmlacademy.pro/static/host/avatar-angelina.jpg",
				IsPro:     true,
			},
			Images:    []string{fmt.Sprintf("https://14.design.htmlacademy.pro/static/hotel/%d.jpg", i+1)},
			MaxAdults: 2 + i%3,
		})
	}
}
