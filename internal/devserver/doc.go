// Package devserver is a local stand-in for the hosted six-cities backend:
// the same eight endpoints, the same error envelope, in-memory fixture data.
// It exists so the client can be developed and demoed offline.
//
// Sessions are issued on any structurally valid login and held in memory;
// favorites are tracked per session token. Nothing persists across restarts.
package devserver
