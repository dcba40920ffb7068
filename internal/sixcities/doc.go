// Package sixcities provides an HTTP client for the six-cities rental API.
//
// # Overview
//
// This package defines the API client the rest of the application talks
// through. It handles HTTP communication, JSON serialization, session token
// injection, and type-safe representation of listings, reviews and user
// profiles.
//
// # Architecture
//
// The package is split into three files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Data structures mirroring the six-cities API schema
//   - errors.go: StatusError and the backend error envelope
//
// # Client Usage
//
// Create a client with the base URL from configuration:
//
//	client, err := sixcities.NewClient(cfg.BaseURL,
//		sixcities.WithTokenSource(tokens.Get),
//		sixcities.WithNotifier(center.Notify),
//	)
//
//	offers, err := client.FetchOffers(ctx)
//	detail, err := client.FetchOffer(ctx, "6af6f711-c28d-4121-82cd-e0b462a27f00")
//
// # API Endpoints
//
//   - GET  /offers                   full listing catalog
//   - GET  /offers/{id}              listing detail
//   - GET  /offers/{id}/nearby       neighbor listings
//   - GET  /comments/{id}            reviews for a listing
//   - POST /comments/{id}            submit a review
//   - POST /favorite/{id}/{0|1}      toggle favorite status
//   - POST /login                    authenticate
//   - GET  /login                    validate the current session
//
// # Request Handling
//
// All requests use context for cancellation, carry Accept and User-Agent
// headers, attach the session token as X-Token when the token source yields
// one, and share a fixed 5-second timeout. JSON request bodies are sent with
// Content-Type: application/json.
//
// # Error Handling
//
// Non-2xx responses become *StatusError values carrying the status code and,
// when the backend sent its error envelope, the summary message and
// field-level details. For 400, 401 and 404 the envelope is additionally
// fanned out to the configured Notifier the same way the web client toasts
// it: one error per detail, one warning for the summary. Network and decode
// failures are wrapped with fmt.Errorf.
//
// The client performs no retries, no caching and no response validation
// beyond JSON decoding; workflow policy (what to swallow, what to surface)
// lives in the workflow package.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. The token source is called
// on every request, so token changes from login and logout take effect
// without rebuilding the client.
package sixcities
