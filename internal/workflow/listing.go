package workflow

import (
	"context"
	"fmt"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
	"github.com/wswfws/2673517-six-cities-6/internal/state"
)

// FetchListing loads the full catalog and replaces the places collection.
// There is no server-side city filter; views scope the result in memory.
func FetchListing(ctx context.Context, store *state.Store, backend sixcities.Backend) error {
	store.Dispatch(state.SetLoadingPlaces{Loading: true})
	defer store.Dispatch(state.SetLoadingPlaces{Loading: false})

	places, err := backend.FetchOffers(ctx)
	if err != nil {
		return fmt.Errorf("fetch offers: %w", err)
	}
	store.Dispatch(state.SetPlaces{Places: places})
	return nil
}
