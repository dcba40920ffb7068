package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
	"github.com/wswfws/2673517-six-cities-6/internal/state"
)

// Review text limits enforced before submit, matching the backend contract.
const (
	MinCommentLength = 50
	MaxCommentLength = 300
)

// ErrCommentPost is returned when a review submission fails. Prior comment
// state is left intact so the form can be retried.
var ErrCommentPost = errors.New("failed to post comment")

// ValidateComment checks a review draft against the submit rules.
func ValidateComment(payload sixcities.CommentPayload) error {
	if payload.Rating < 1 || payload.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if n := len([]rune(payload.Comment)); n < MinCommentLength {
		return fmt.Errorf("comment must be at least %d characters, got %d", MinCommentLength, n)
	} else if n > MaxCommentLength {
		return fmt.Errorf("comment must be at most %d characters, got %d", MaxCommentLength, n)
	}
	return nil
}

// PostComment submits a review, then refetches the full review list. The
// list is replaced wholesale rather than appending the posted review, so the
// view always mirrors what the backend stored.
func PostComment(ctx context.Context, store *state.Store, backend sixcities.Backend, id string, payload sixcities.CommentPayload) error {
	store.Dispatch(state.SetPostingComment{Posting: true})
	defer store.Dispatch(state.SetPostingComment{Posting: false})

	if _, err := backend.PostComment(ctx, id, payload); err != nil {
		return ErrCommentPost
	}
	comments, err := backend.FetchComments(ctx, id)
	if err != nil {
		return ErrCommentPost
	}
	store.Dispatch(state.SetComments{Comments: comments})
	return nil
}
