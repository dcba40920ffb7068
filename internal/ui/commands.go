package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
	"github.com/wswfws/2673517-six-cities-6/internal/state"
	"github.com/wswfws/2673517-six-cities-6/internal/token"
	"github.com/wswfws/2673517-six-cities-6/internal/workflow"
)

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type listingDoneMsg struct{ err error }

type offerDoneMsg struct{ err error }

type commentDoneMsg struct{ err error }

type favoriteDoneMsg struct{ err error }

type loginDoneMsg struct{ err error }

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func fetchListingCmd(ctx context.Context, store *state.Store, client sixcities.Backend) tea.Cmd {
	return func() tea.Msg {
		return listingDoneMsg{err: workflow.FetchListing(ctx, store, client)}
	}
}

func fetchOfferCmd(ctx context.Context, store *state.Store, client sixcities.Backend, id string) tea.Cmd {
	return func() tea.Msg {
		return offerDoneMsg{err: workflow.FetchOffer(ctx, store, client, id)}
	}
}

func postCommentCmd(ctx context.Context, store *state.Store, client sixcities.Backend, id string, payload sixcities.CommentPayload) tea.Cmd {
	return func() tea.Msg {
		return commentDoneMsg{err: workflow.PostComment(ctx, store, client, id, payload)}
	}
}

func postFavoriteCmd(ctx context.Context, store *state.Store, client sixcities.Backend, id string, favorite bool) tea.Cmd {
	return func() tea.Msg {
		return favoriteDoneMsg{err: workflow.PostFavorite(ctx, store, client, id, favorite)}
	}
}

func loginCmd(ctx context.Context, store *state.Store, client sixcities.Backend, tokens *token.Store, creds sixcities.Credentials) tea.Cmd {
	return func() tea.Msg {
		return loginDoneMsg{err: workflow.Login(ctx, store, client, tokens, creds)}
	}
}
