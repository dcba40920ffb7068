package state

import (
	"reflect"
	"testing"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
)

func makePlace(id string, overrides func(*sixcities.Place)) sixcities.Place {
	place := sixcities.Place{
		ID:    id,
		Title: "Test place",
		Type:  sixcities.TypeApartment,
		Price: 120,
		City: sixcities.City{
			Name:     "Paris",
			Location: sixcities.Location{Latitude: 48.8566, Longitude: 2.3522, Zoom: 10},
		},
		Location:     sixcities.Location{Latitude: 48.8566, Longitude: 2.3522, Zoom: 10},
		Rating:       4.5,
		PreviewImage: "img.jpg",
	}
	if overrides != nil {
		overrides(&place)
	}
	return place
}

func makeDetail(id string) *sixcities.PlaceDetail {
	return &sixcities.PlaceDetail{
		Place:       makePlace(id, nil),
		Description: "A nice place",
		Bedrooms:    2,
		Goods:       []string{"WiFi"},
		Host:        sixcities.UserSummary{Name: "Host", AvatarURL: "avatar.jpg"},
		Images:      []string{"img.jpg"},
		MaxAdults:   4,
	}
}

func TestReduceOffers_FieldReplacement(t *testing.T) {
	s := InitialOffersState()

	s = ReduceOffers(s, SetCity{City: "Amsterdam"})
	if s.City != "Amsterdam" {
		t.Fatalf("City = %q, want Amsterdam", s.City)
	}

	s = ReduceOffers(s, SetLoadingPlaces{Loading: true})
	if !s.LoadingPlaces {
		t.Fatal("LoadingPlaces = false, want true")
	}

	places := []sixcities.Place{makePlace("a", nil), makePlace("b", nil)}
	s = ReduceOffers(s, SetPlaces{Places: places})
	if len(s.Places) != 2 || s.Places[0].ID != "a" {
		t.Fatalf("Places = %#v, want the two seeded places", s.Places)
	}

	detail := makeDetail("a")
	s = ReduceOffers(s, SetOfferDetail{Detail: detail})
	if s.OfferDetail == nil || s.OfferDetail.ID != "a" {
		t.Fatalf("OfferDetail = %#v, want id a", s.OfferDetail)
	}

	s = ReduceOffers(s, SetNeighbors{Neighbors: []sixcities.Place{makePlace("b", nil)}})
	if len(s.Neighbors) != 1 || s.Neighbors[0].ID != "b" {
		t.Fatalf("Neighbors = %#v, want one neighbor id b", s.Neighbors)
	}

	s = ReduceOffers(s, SetComments{Comments: []sixcities.Review{{ID: "r1"}}})
	if len(s.Comments) != 1 || s.Comments[0].ID != "r1" {
		t.Fatalf("Comments = %#v, want one review r1", s.Comments)
	}

	s = ReduceOffers(s, SetLoadingDetail{Loading: true})
	s = ReduceOffers(s, SetNotFound{NotFound: true})
	s = ReduceOffers(s, SetPostingComment{Posting: true})
	if !s.LoadingDetail || !s.NotFound || !s.PostingComment {
		t.Fatalf("flags = %v/%v/%v, want all true", s.LoadingDetail, s.NotFound, s.PostingComment)
	}

	s = ReduceOffers(s, SetOfferDetail{Detail: nil})
	if s.OfferDetail != nil {
		t.Fatalf("OfferDetail = %#v, want nil after clear", s.OfferDetail)
	}
}

func TestReduceOffers_PureAndDeterministic(t *testing.T) {
	original := OffersState{
		City:   "Paris",
		Places: []sixcities.Place{makePlace("a", nil), makePlace("b", nil)},
	}
	// Keep an independent copy to prove the input is untouched.
	backup := OffersState{
		City:   "Paris",
		Places: []sixcities.Place{makePlace("a", nil), makePlace("b", nil)},
	}

	action := PatchPlace{Place: makePlace("a", func(p *sixcities.Place) { p.IsFavorite = true })}

	first := ReduceOffers(original, action)
	second := ReduceOffers(original, action)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same (state, action) produced different results:\n%#v\n%#v", first, second)
	}
	if !reflect.DeepEqual(original, backup) {
		t.Fatalf("input state mutated: %#v", original)
	}
}

func TestPatchPlace_RewritesAllProjections(t *testing.T) {
	s := OffersState{
		Places:      []sixcities.Place{makePlace("x", nil), makePlace("other", nil)},
		Neighbors:   []sixcities.Place{makePlace("x", nil)},
		OfferDetail: makeDetail("x"),
	}

	updated := makePlace("x", func(p *sixcities.Place) { p.IsFavorite = true })
	next := ReduceOffers(s, PatchPlace{Place: updated})

	if !next.Places[0].IsFavorite {
		t.Fatal("places projection not patched")
	}
	if !next.Neighbors[0].IsFavorite {
		t.Fatal("neighbors projection not patched")
	}
	if next.OfferDetail == nil || !next.OfferDetail.IsFavorite {
		t.Fatal("detail projection not patched")
	}

	// Non-matching entries stay structurally identical.
	if !reflect.DeepEqual(next.Places[1], s.Places[1]) {
		t.Fatalf("unrelated place changed: %#v", next.Places[1])
	}
	// Detail fields outside the card projection survive the patch.
	if next.OfferDetail.Description != "A nice place" || next.OfferDetail.Bedrooms != 2 {
		t.Fatalf("detail lost its full fields: %#v", next.OfferDetail)
	}
	// The input collections themselves were not rewritten.
	if s.Places[0].IsFavorite || s.Neighbors[0].IsFavorite || s.OfferDetail.IsFavorite {
		t.Fatal("input state mutated in place")
	}
}

func TestPatchPlace_NoOpOnMiss(t *testing.T) {
	s := OffersState{
		Places:      []sixcities.Place{makePlace("a", nil)},
		Neighbors:   []sixcities.Place{makePlace("b", nil)},
		OfferDetail: makeDetail("c"),
	}

	next := ReduceOffers(s, PatchPlace{Place: makePlace("missing", func(p *sixcities.Place) { p.IsFavorite = true })})

	if !reflect.DeepEqual(next, s) {
		t.Fatalf("state changed on miss:\n got %#v\nwant %#v", next, s)
	}
	// Untouched collections keep the same backing arrays.
	if &next.Places[0] != &s.Places[0] || &next.Neighbors[0] != &s.Neighbors[0] {
		t.Fatal("collections reallocated on miss")
	}
	if next.OfferDetail != s.OfferDetail {
		t.Fatal("detail reallocated on miss")
	}
}

func TestPatchPlace_NilDetail(t *testing.T) {
	s := OffersState{Places: []sixcities.Place{makePlace("a", nil)}}

	next := ReduceOffers(s, PatchPlace{Place: makePlace("a", func(p *sixcities.Place) { p.IsFavorite = true })})
	if next.OfferDetail != nil {
		t.Fatalf("OfferDetail = %#v, want nil", next.OfferDetail)
	}
	if !next.Places[0].IsFavorite {
		t.Fatal("places projection not patched")
	}
}
