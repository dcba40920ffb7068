package state

import "github.com/wswfws/2673517-six-cities-6/internal/sixcities"

// AuthorizationStatus is the tri-state session question.
type AuthorizationStatus int

const (
	// AuthUnknown holds until the first session check resolves.
	AuthUnknown AuthorizationStatus = iota
	// AuthAuthenticated means the backend accepted the session token.
	AuthAuthenticated
	// AuthUnauthenticated means there is no valid session.
	AuthUnauthenticated
)

// String implements fmt.Stringer.
func (s AuthorizationStatus) String() string {
	switch s {
	case AuthAuthenticated:
		return "authenticated"
	case AuthUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// UserState holds the session status and the last-known profile.
// The workflow layer keeps the two consistent: Profile is non-nil only when
// Status is AuthAuthenticated.
type UserState struct {
	Status  AuthorizationStatus
	Profile *sixcities.Profile
}

// InitialUserState returns the state before the bootstrap session check.
func InitialUserState() UserState {
	return UserState{Status: AuthUnknown}
}

// ReduceUser applies one action to the user slice. Pure, like ReduceOffers.
func ReduceUser(s UserState, action Action) UserState {
	switch a := action.(type) {
	case SetAuthorizationStatus:
		s.Status = a.Status
	case SetProfile:
		s.Profile = a.Profile
	}
	return s
}
