package state

import (
	"sync"
	"testing"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
)

func TestStoreInitialState(t *testing.T) {
	store := NewStore()
	snap := store.Snapshot()

	if snap.Offers.City != DefaultCity {
		t.Fatalf("City = %q, want %q", snap.Offers.City, DefaultCity)
	}
	if snap.User.Status != AuthUnknown {
		t.Fatalf("Status = %v, want %v", snap.User.Status, AuthUnknown)
	}
	if snap.Offers.Places != nil || snap.Offers.OfferDetail != nil {
		t.Fatalf("initial offers not empty: %#v", snap.Offers)
	}
}

func TestStoreDispatchReachesBothSlices(t *testing.T) {
	store := NewStore()
	store.Dispatch(
		SetCity{City: "Cologne"},
		SetAuthorizationStatus{Status: AuthAuthenticated},
		SetProfile{Profile: &sixcities.Profile{Email: "keks@htmlacademy.ru"}},
	)

	snap := store.Snapshot()
	if snap.Offers.City != "Cologne" {
		t.Fatalf("City = %q, want Cologne", snap.Offers.City)
	}
	if snap.User.Status != AuthAuthenticated {
		t.Fatalf("Status = %v, want %v", snap.User.Status, AuthAuthenticated)
	}
	if snap.User.Profile == nil || snap.User.Profile.Email != "keks@htmlacademy.ru" {
		t.Fatalf("Profile = %#v", snap.User.Profile)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	store := NewStore()
	store.Dispatch(
		SetPlaces{Places: []sixcities.Place{makePlace("a", nil)}},
		SetNeighbors{Neighbors: []sixcities.Place{makePlace("b", nil)}},
		SetComments{Comments: []sixcities.Review{{ID: "r1", Comment: "fine"}}},
		SetOfferDetail{Detail: makeDetail("a")},
		SetProfile{Profile: &sixcities.Profile{Name: "Keks"}},
	)

	snap := store.Snapshot()

	// Mutating the snapshot must not leak back into the store.
	snap.Offers.Places[0].IsFavorite = true
	snap.Offers.Neighbors[0].Title = "changed"
	snap.Offers.Comments[0].Comment = "changed"
	snap.Offers.OfferDetail.Title = "changed"
	snap.Offers.OfferDetail.Goods[0] = "changed"
	snap.Offers.OfferDetail.Images[0] = "changed"
	snap.User.Profile.Name = "changed"

	fresh := store.Snapshot()
	if fresh.Offers.Places[0].IsFavorite {
		t.Fatal("snapshot places share backing array with store")
	}
	if fresh.Offers.Neighbors[0].Title == "changed" {
		t.Fatal("snapshot neighbors share backing array with store")
	}
	if fresh.Offers.Comments[0].Comment == "changed" {
		t.Fatal("snapshot comments share backing array with store")
	}
	if fresh.Offers.OfferDetail.Title == "changed" {
		t.Fatal("snapshot detail shares pointer with store")
	}
	if fresh.Offers.OfferDetail.Goods[0] == "changed" {
		t.Fatal("snapshot detail goods share backing array with store")
	}
	if fresh.Offers.OfferDetail.Images[0] == "changed" {
		t.Fatal("snapshot detail images share backing array with store")
	}
	if fresh.User.Profile.Name == "changed" {
		t.Fatal("snapshot profile shares pointer with store")
	}
}

func TestStoreConcurrentDispatch(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Dispatch(SetLoadingPlaces{Loading: true}, SetLoadingPlaces{Loading: false})
		}()
		go func() {
			defer wg.Done()
			_ = store.Snapshot()
		}()
	}
	wg.Wait()

	if store.Snapshot().Offers.LoadingPlaces {
		t.Fatal("LoadingPlaces = true after paired toggles")
	}
}
