// Package state holds the client-side mirror of server state.
//
// # Overview
//
// The store is split into two independent slices:
//
//   - Offers: city selection, listing catalog, the viewed offer with its
//     neighbors and reviews, and four independent progress flags
//   - User: tri-state authorization status and the last-known profile
//
// Both slices are reduced by pure functions over a tagged-union Action type;
// the Store applies dispatched actions under a mutex, so individual reducer
// applications are atomic with respect to each other and to snapshots.
//
// # Actions
//
// Every mutation is a plain field replacement except PatchPlace. The client
// keeps three projections of the same listing entities (catalog, neighbor
// list, viewed detail); when the backend confirms a favorite toggle,
// PatchPlace rewrites the matching entry in all three at once and leaves
// every other entry untouched. Collections without a match come back
// structurally identical, which lets consumers skip re-rendering.
//
// # Authorization state machine
//
// Status starts at AuthUnknown and resolves exactly once at bootstrap, via
// the session check, to authenticated or unauthenticated. Login moves either
// resolved state to authenticated; logout moves authenticated to
// unauthenticated. Nothing returns to AuthUnknown.
//
// # Concurrency Model
//
// Same shape as a readers-writer snapshot store: Dispatch takes the write
// lock, Snapshot takes the read lock and returns defensive copies of every
// slice and pointer. Workflows dispatch from their own goroutines; the UI
// reads snapshots on its refresh tick. The lock is held only while copying,
// never across network I/O.
//
// Dispatches from two in-flight workflows interleave at action granularity.
// There is no request-generation guard: a catalog fetch that resolves late
// replaces a newer catalog wholesale. That matches the demand-driven,
// last-writer-wins semantics of the data flow.
//
// # Selectors
//
// select.go carries the pure derivations the views need: distinct cities in
// first-seen order, in-memory city filtering over the whole catalog,
// favorites, and the four display sort orders ("Popular" preserves server
// order; the others are stable sorts by price or rating).
package state
