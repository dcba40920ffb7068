package state

import (
	"testing"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
)

func TestReduceUser_AuthTransitions(t *testing.T) {
	s := InitialUserState()
	if s.Status != AuthUnknown {
		t.Fatalf("initial status = %v, want %v", s.Status, AuthUnknown)
	}

	s = ReduceUser(s, SetAuthorizationStatus{Status: AuthAuthenticated})
	if s.Status != AuthAuthenticated {
		t.Fatalf("status = %v, want %v", s.Status, AuthAuthenticated)
	}

	s = ReduceUser(s, SetAuthorizationStatus{Status: AuthUnauthenticated})
	if s.Status != AuthUnauthenticated {
		t.Fatalf("status = %v, want %v", s.Status, AuthUnauthenticated)
	}
}

func TestReduceUser_Profile(t *testing.T) {
	s := InitialUserState()

	profile := &sixcities.Profile{Name: "Keks", Email: "keks@htmlacademy.ru"}
	s = ReduceUser(s, SetProfile{Profile: profile})
	if s.Profile == nil || s.Profile.Email != "keks@htmlacademy.ru" {
		t.Fatalf("Profile = %#v, want keks@htmlacademy.ru", s.Profile)
	}

	s = ReduceUser(s, SetProfile{Profile: nil})
	if s.Profile != nil {
		t.Fatalf("Profile = %#v, want nil after clear", s.Profile)
	}
}

func TestReduceUser_IgnoresOfferActions(t *testing.T) {
	s := UserState{Status: AuthAuthenticated}

	next := ReduceUser(s, SetCity{City: "Hamburg"})
	if next != s {
		t.Fatalf("user state changed by offers action: %#v", next)
	}
}

func TestAuthorizationStatusString(t *testing.T) {
	cases := []struct {
		status AuthorizationStatus
		want   string
	}{
		{AuthUnknown, "unknown"},
		{AuthAuthenticated, "authenticated"},
		{AuthUnauthenticated, "unauthenticated"},
	}
	for _, tc := range cases {
		if got := tc.status.String(); got != tc.want {
			t.Fatalf("String(%d) = %q, want %q", tc.status, got, tc.want)
		}
	}
}
