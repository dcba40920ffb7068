package workflow

import (
	"context"
	"errors"
	"sync"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
	"github.com/wswfws/2673517-six-cities-6/internal/state"
)

// ErrOfferLoad is returned when any part of the offer page fetch fails for a
// reason other than the offer not existing.
var ErrOfferLoad = errors.New("failed to load offer")

// FetchOffer loads the offer page data: the detail record first, then its
// neighbors and reviews in parallel (both depend only on the id). A 404 on
// the detail fetch is an expected outcome and sets the not-found flag
// instead of failing; any other failure returns ErrOfferLoad.
func FetchOffer(ctx context.Context, store *state.Store, backend sixcities.Backend, id string) error {
	store.Dispatch(
		state.SetLoadingDetail{Loading: true},
		state.SetNotFound{NotFound: false},
	)
	defer store.Dispatch(state.SetLoadingDetail{Loading: false})

	detail, err := backend.FetchOffer(ctx, id)
	if err != nil {
		if sixcities.IsNotFound(err) {
			store.Dispatch(
				state.SetNotFound{NotFound: true},
				state.SetOfferDetail{Detail: nil},
			)
			return nil
		}
		return ErrOfferLoad
	}
	store.Dispatch(state.SetOfferDetail{Detail: detail})

	var (
		wg          sync.WaitGroup
		neighbors   []sixcities.Place
		comments    []sixcities.Review
		neighborErr error
		commentErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		neighbors, neighborErr = backend.FetchNearby(ctx, id)
	}()
	go func() {
		defer wg.Done()
		comments, commentErr = backend.FetchComments(ctx, id)
	}()
	wg.Wait()

	if neighborErr != nil || commentErr != nil {
		return ErrOfferLoad
	}
	store.Dispatch(
		state.SetNeighbors{Neighbors: neighbors},
		state.SetComments{Comments: comments},
	)
	return nil
}

// LeaveOffer clears the offer page state on navigation away.
func LeaveOffer(store *state.Store) {
	store.Dispatch(
		state.SetOfferDetail{Detail: nil},
		state.SetNeighbors{Neighbors: nil},
		state.SetComments{Comments: nil},
		state.SetNotFound{NotFound: false},
	)
}
