package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
	"github.com/wswfws/2673517-six-cities-6/internal/state"
	"github.com/wswfws/2673517-six-cities-6/internal/token"
)

// ErrLogin is returned when authentication fails and the backend did not
// explain why.
var ErrLogin = errors.New("failed to log in")

// CheckSession resolves the bootstrap authorization question. It never
// fails: a missing or rejected token is normal application state, not an
// error, so any fetch failure lands on unauthenticated.
func CheckSession(ctx context.Context, store *state.Store, backend sixcities.Backend) {
	profile, err := backend.FetchSession(ctx)
	if err != nil {
		store.Dispatch(state.SetAuthorizationStatus{Status: state.AuthUnauthenticated})
		return
	}
	store.Dispatch(
		state.SetAuthorizationStatus{Status: state.AuthAuthenticated},
		state.SetProfile{Profile: profile},
	)
}

// Login authenticates, persists the returned session token, and records the
// profile. On failure the authorization status is left unchanged and the
// backend's message is surfaced when it sent one.
func Login(ctx context.Context, store *state.Store, backend sixcities.Backend, tokens *token.Store, creds sixcities.Credentials) error {
	profile, err := backend.Login(ctx, creds)
	if err != nil {
		if msg := sixcities.ServerMessage(err); msg != "" {
			return fmt.Errorf("%w: %s", ErrLogin, msg)
		}
		return ErrLogin
	}
	if err := tokens.Save(profile.Token); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}
	store.Dispatch(
		state.SetAuthorizationStatus{Status: state.AuthAuthenticated},
		state.SetProfile{Profile: profile},
	)
	return nil
}

// Logout drops the session: the persisted token first, then the in-memory
// status and profile. The backend holds no logout endpoint; forgetting the
// token is the whole operation.
func Logout(store *state.Store, tokens *token.Store) error {
	err := tokens.Clear()
	store.Dispatch(
		state.SetAuthorizationStatus{Status: state.AuthUnauthenticated},
		state.SetProfile{Profile: nil},
	)
	return err
}
