// Package ui implements the Bubble Tea terminal interface for six cities.
//
// The model follows the standard Elm shape: a single Model value, an Update
// that handles key, tick and workflow-completion messages, and a View that
// renders the active screen (city browse, offer page, favorites, sign-in).
//
// All data comes from state.Store snapshots fetched on a fixed refresh tick
// and after every workflow completes. Workflows themselves run as tea.Cmd
// goroutines wrapping the workflow package; the UI never talks to the HTTP
// client directly. Notices from the notification center are rendered as a
// footer, taking the place of the web client's toasts.
package ui
