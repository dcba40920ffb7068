package state

import "github.com/wswfws/2673517-six-cities-6/internal/sixcities"

// DefaultCity is selected before the user picks one.
const DefaultCity = "Paris"

// OffersState holds the listing catalog and everything tied to the
// currently viewed offer.
type OffersState struct {
	City           string
	Places         []sixcities.Place
	OfferDetail    *sixcities.PlaceDetail
	Neighbors      []sixcities.Place
	Comments       []sixcities.Review
	LoadingPlaces  bool
	LoadingDetail  bool
	PostingComment bool
	NotFound       bool
}

// InitialOffersState returns the state before any fetch has run.
func InitialOffersState() OffersState {
	return OffersState{City: DefaultCity}
}

// ReduceOffers applies one action to the offers slice. It is pure: the input
// state is never mutated, and actions that do not concern this slice return
// it unchanged.
func ReduceOffers(s OffersState, action Action) OffersState {
	switch a := action.(type) {
	case SetCity:
		s.City = a.City
	case SetLoadingPlaces:
		s.LoadingPlaces = a.Loading
	case SetPlaces:
		s.Places = a.Places
	case SetOfferDetail:
		s.OfferDetail = a.Detail
	case SetNeighbors:
		s.Neighbors = a.Neighbors
	case SetComments:
		s.Comments = a.Comments
	case SetLoadingDetail:
		s.LoadingDetail = a.Loading
	case SetNotFound:
		s.NotFound = a.NotFound
	case SetPostingComment:
		s.PostingComment = a.Posting
	case PatchPlace:
		return patchPlace(s, a.Place)
	}
	return s
}

// patchPlace rewrites every projection holding the patched listing. The
// backend is the source of truth for the favorite flag, and the client keeps
// three independent copies of the same entities; all of them must agree.
// Collections without a match are returned as-is so consumers can cheaply
// detect that nothing changed.
func patchPlace(s OffersState, updated sixcities.Place) OffersState {
	if places, ok := replaceByID(s.Places, updated); ok {
		s.Places = places
	}
	if neighbors, ok := replaceByID(s.Neighbors, updated); ok {
		s.Neighbors = neighbors
	}
	if s.OfferDetail != nil && s.OfferDetail.ID == updated.ID {
		detail := *s.OfferDetail
		detail.Place = updated
		s.OfferDetail = &detail
	}
	return s
}

func replaceByID(places []sixcities.Place, updated sixcities.Place) ([]sixcities.Place, bool) {
	for i := range places {
		if places[i].ID == updated.ID {
			next := make([]sixcities.Place, len(places))
			copy(next, places)
			next[i] = updated
			return next, true
		}
	}
	return places, false
}
