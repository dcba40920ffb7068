// Package workflow holds one coordinator per user-triggered flow: fetch the
// catalog, open an offer page, post a review, toggle a favorite, and the
// three auth transitions.
//
// Each coordinator sequences resource fetches through sixcities.Backend and
// dispatches store actions before and after, owning the per-flow error
// policy:
//
//   - FetchOffer swallows a detail 404 into the not-found flag
//   - CheckSession never fails; any failure means unauthenticated
//   - Login surfaces the backend's envelope message when present
//   - everything else collapses to a short sentinel error for the UI
//
// Coordinators are invoked from view events (navigation, key presses, form
// submits) on their own goroutines. In-flight requests are not cancelled on
// navigation and carry no generation token, so a slow response landing after
// a newer one replaces it; dispatches are last-writer-wins at action
// granularity.
package workflow
