package workflow

import (
	"context"
	"fmt"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
	"github.com/wswfws/2673517-six-cities-6/internal/state"
)

// PostFavorite toggles the favorite flag server-side and patches every
// cached projection of the listing with the confirmed copy. No optimistic
// update is made, so a failure needs no rollback.
func PostFavorite(ctx context.Context, store *state.Store, backend sixcities.Backend, id string, favorite bool) error {
	status := 0
	if favorite {
		status = 1
	}
	updated, err := backend.SetFavoriteStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("set favorite status: %w", err)
	}
	store.Dispatch(state.PatchPlace{Place: *updated})
	return nil
}
