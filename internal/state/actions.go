package state

import "github.com/wswfws/2673517-six-cities-6/internal/sixcities"

// Action is the closed set of store mutations. Each variant maps to exactly
// one field replacement in a slice, except PatchPlace which rewrites every
// cached projection of one listing.
type Action interface {
	isAction()
}

// Offers slice actions.

// SetCity selects the active city.
type SetCity struct{ City string }

// SetLoadingPlaces flips the catalog-fetch progress flag.
type SetLoadingPlaces struct{ Loading bool }

// SetPlaces replaces the full listing catalog.
type SetPlaces struct{ Places []sixcities.Place }

// SetOfferDetail replaces the currently viewed listing, nil to clear.
type SetOfferDetail struct{ Detail *sixcities.PlaceDetail }

// SetNeighbors replaces the neighbor list of the viewed listing.
type SetNeighbors struct{ Neighbors []sixcities.Place }

// SetComments replaces the review list of the viewed listing.
type SetComments struct{ Comments []sixcities.Review }

// SetLoadingDetail flips the detail-fetch progress flag.
type SetLoadingDetail struct{ Loading bool }

// SetNotFound flips the flag for a listing the backend does not know.
type SetNotFound struct{ NotFound bool }

// SetPostingComment flips the review-submit progress flag.
type SetPostingComment struct{ Posting bool }

// PatchPlace rewrites every cached copy of one listing, matched by id:
// the catalog, the neighbor list, and the viewed detail.
type PatchPlace struct{ Place sixcities.Place }

// User slice actions.

// SetAuthorizationStatus moves the session through the
// unknown/authenticated/unauthenticated state machine.
type SetAuthorizationStatus struct{ Status AuthorizationStatus }

// SetProfile replaces the known user profile, nil to clear.
type SetProfile struct{ Profile *sixcities.Profile }

func (SetCity) isAction()                {}
func (SetLoadingPlaces) isAction()       {}
func (SetPlaces) isAction()              {}
func (SetOfferDetail) isAction()         {}
func (SetNeighbors) isAction()           {}
func (SetComments) isAction()            {}
func (SetLoadingDetail) isAction()       {}
func (SetNotFound) isAction()            {}
func (SetPostingComment) isAction()      {}
func (PatchPlace) isAction()             {}
func (SetAuthorizationStatus) isAction() {}
func (SetProfile) isAction()             {}
