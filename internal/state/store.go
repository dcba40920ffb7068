package state

import (
	"sync"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
)

// Snapshot is an immutable view of both slices at a point in time.
type Snapshot struct {
	Offers OffersState
	User   UserState
}

// Store coordinates concurrent dispatches against the two slices. The zero
// value is not ready; use NewStore so the initial city and authorization
// status are in place.
type Store struct {
	mu     sync.RWMutex
	offers OffersState
	user   UserState
}

// NewStore returns a store holding the initial state of both slices.
func NewStore() *Store {
	return &Store{
		offers: InitialOffersState(),
		user:   InitialUserState(),
	}
}

// Dispatch applies the given actions in order, atomically with respect to
// other dispatches and snapshots. Each action goes through both reducers;
// a reducer ignores actions that do not concern its slice.
func (s *Store) Dispatch(actions ...Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, action := range actions {
		s.offers = ReduceOffers(s.offers, action)
		s.user = ReduceUser(s.user, action)
	}
}

// Snapshot returns a copy of the current state. Slices and pointers are
// cloned so the caller can hold the snapshot across later dispatches.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Offers: s.offers,
		User:   s.user,
	}
	snap.Offers.Places = clonePlaces(s.offers.Places)
	snap.Offers.Neighbors = clonePlaces(s.offers.Neighbors)
	snap.Offers.Comments = cloneReviews(s.offers.Comments)
	if s.offers.OfferDetail != nil {
		detail := *s.offers.OfferDetail
		detail.Goods = cloneStrings(detail.Goods)
		detail.Images = cloneStrings(detail.Images)
		snap.Offers.OfferDetail = &detail
	}
	if s.user.Profile != nil {
		profile := *s.user.Profile
		snap.User.Profile = &profile
	}
	return snap
}

func clonePlaces(places []sixcities.Place) []sixcities.Place {
	if len(places) == 0 {
		return nil
	}
	dup := make([]sixcities.Place, len(places))
	copy(dup, places)
	return dup
}

func cloneReviews(reviews []sixcities.Review) []sixcities.Review {
	if len(reviews) == 0 {
		return nil
	}
	dup := make([]sixcities.Review, len(reviews))
	copy(dup, reviews)
	return dup
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	dup := make([]string, len(values))
	copy(dup, values)
	return dup
}
