// Package app is the composition root: it wires configuration, the
// persisted token, the API client, the state store and the notification
// center together, runs the bootstrap workflows (one session check, one
// catalog fetch), and hands everything to the UI.
//
// Startup order:
//
//  1. config.Load            connection settings, all defaulted
//  2. prefs.Load             theme, last city, last sort order
//  3. token.Open             persisted session token, if any
//  4. sixcities.NewClient    token source + notification hook attached
//  5. workflow.CheckSession  unknown → authenticated|unauthenticated, once
//  6. workflow.FetchListing  initial catalog; failure is recoverable
//  7. ui.Run                 blocks until quit or context cancellation
//
// Fatal errors are confined to steps 1-4; once the UI is up, every failure
// flows through the store's flags or the notification center instead.
package app
