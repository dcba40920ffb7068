package sixcities

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, opts...)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestFetchOffers(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/offers" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"o1","title":"Loft","price":120,"city":{"name":"Paris"}}]`))
	}))

	offers, err := client.FetchOffers(testContext(t))
	if err != nil {
		t.Fatalf("FetchOffers: %v", err)
	}
	if len(offers) != 1 || offers[0].ID != "o1" || offers[0].City.Name != "Paris" {
		t.Fatalf("offers = %#v", offers)
	}
}

func TestBasePathPrefixPreserved(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL + "/six-cities/")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.FetchOffers(testContext(t)); err != nil {
		t.Fatalf("FetchOffers: %v", err)
	}
	if gotPath != "/six-cities/offers" {
		t.Fatalf("request path = %q, want /six-cities/offers", gotPath)
	}
}

func TestTokenHeader(t *testing.T) {
	token := "abc123"
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Token"); got != token {
			t.Errorf("X-Token = %q, want %q", got, token)
		}
		_, _ = w.Write([]byte(`{"email":"keks@htmlacademy.ru","token":"abc123"}`))
	}), WithTokenSource(func() string { return token }))

	if _, err := client.FetchSession(testContext(t)); err != nil {
		t.Fatalf("FetchSession: %v", err)
	}
}

func TestTokenHeaderOmittedWhenEmpty(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["X-Token"]; ok {
			t.Error("X-Token header present on anonymous request")
		}
		_, _ = w.Write([]byte(`[]`))
	}), WithTokenSource(func() string { return "" }))

	if _, err := client.FetchOffers(testContext(t)); err != nil {
		t.Fatalf("FetchOffers: %v", err)
	}
}

func TestFetchOfferPathAndDecode(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/offers/o7" {
			t.Errorf("path = %q, want /offers/o7", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":"o7","title":"Canal view","bedrooms":3,"maxAdults":4,"goods":["WiFi"],"host":{"name":"Angelina","isPro":true}}`))
	}))

	detail, err := client.FetchOffer(testContext(t), "o7")
	if err != nil {
		t.Fatalf("FetchOffer: %v", err)
	}
	if detail.ID != "o7" || detail.Bedrooms != 3 || !detail.Host.IsPro {
		t.Fatalf("detail = %#v", detail)
	}
}

func TestFetchOfferEmptyID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request reached server")
	}))

	if _, err := client.FetchOffer(testContext(t), "  "); err == nil {
		t.Fatal("FetchOffer with blank id succeeded")
	}
}

func TestNearbyAndCommentsPaths(t *testing.T) {
	var paths []string
	var mu sync.Mutex
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		_, _ = w.Write([]byte(`[]`))
	}))

	ctx := testContext(t)
	if _, err := client.FetchNearby(ctx, "o1"); err != nil {
		t.Fatalf("FetchNearby: %v", err)
	}
	if _, err := client.FetchComments(ctx, "o1"); err != nil {
		t.Fatalf("FetchComments: %v", err)
	}

	want := []string{"/offers/o1/nearby", "/comments/o1"}
	for i, p := range want {
		if paths[i] != p {
			t.Fatalf("paths = %v, want %v", paths, want)
		}
	}
}

func TestPostComment(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/comments/o1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var payload CommentPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if payload.Rating != 4 || !strings.Contains(payload.Comment, "quiet") {
			t.Errorf("payload = %#v", payload)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"r1","rating":4,"comment":"posted"}`))
	}))

	review, err := client.PostComment(testContext(t), "o1", CommentPayload{
		Comment: strings.Repeat("quiet ", 10),
		Rating:  4,
	})
	if err != nil {
		t.Fatalf("PostComment: %v", err)
	}
	if review.ID != "r1" {
		t.Fatalf("review = %#v", review)
	}
}

func TestSetFavoriteStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/favorite/o1/1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":"o1","isFavorite":true}`))
	}))

	place, err := client.SetFavoriteStatus(testContext(t), "o1", 1)
	if err != nil {
		t.Fatalf("SetFavoriteStatus: %v", err)
	}
	if !place.IsFavorite {
		t.Fatalf("place = %#v, want isFavorite true", place)
	}

	if _, err := client.SetFavoriteStatus(testContext(t), "o1", 2); err == nil {
		t.Fatal("status 2 accepted")
	}
}

func TestLoginSendsCredentials(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("decode creds: %v", err)
		}
		if creds.Email != "keks@htmlacademy.ru" || creds.Password != "p4ss" {
			t.Errorf("creds = %#v", creds)
		}
		_, _ = w.Write([]byte(`{"email":"keks@htmlacademy.ru","token":"tok-1"}`))
	}))

	profile, err := client.Login(testContext(t), Credentials{Email: "keks@htmlacademy.ru", Password: "p4ss"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if profile.Token != "tok-1" {
		t.Fatalf("profile = %#v", profile)
	}
}

func TestErrorEnvelopeFansOutToNotifier(t *testing.T) {
	var mu sync.Mutex
	var notices [][2]string
	record := func(severity, message string) {
		mu.Lock()
		notices = append(notices, [2]string{severity, message})
		mu.Unlock()
	}

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{
			"errorType": "VALIDATION_ERROR",
			"message": "Validation error: /six-cities/login",
			"details": [
				{"property": "email", "value": "", "messages": ["email must be an email"]},
				{"property": "password", "value": "", "messages": ["password is too short", "password must contain a digit"]}
			]
		}`))
	}), WithNotifier(record))

	_, err := client.Login(testContext(t), Credentials{})
	if err == nil {
		t.Fatal("Login succeeded on 400")
	}

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.StatusCode != http.StatusBadRequest || se.Path != "/login" {
		t.Fatalf("StatusError = %#v", se)
	}
	if len(se.Details) != 2 || se.Details[0].Property != "email" {
		t.Fatalf("Details = %#v", se.Details)
	}

	if len(notices) != 3 {
		t.Fatalf("notices = %v, want 2 errors and 1 warning", notices)
	}
	if notices[0][0] != "error" || !strings.Contains(notices[0][1], "email must be an email") {
		t.Fatalf("first notice = %v", notices[0])
	}
	if notices[1][0] != "error" || !strings.Contains(notices[1][1], "password is too short, password must contain a digit") {
		t.Fatalf("second notice = %v", notices[1])
	}
	if notices[2][0] != "warning" || !strings.Contains(notices[2][1], "Validation error") {
		t.Fatalf("third notice = %v", notices[2])
	}
}

func TestServerErrorNotNotified(t *testing.T) {
	notified := false
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"errorType":"COMMON_ERROR","message":"boom"}`))
	}), WithNotifier(func(severity, message string) { notified = true }))

	_, err := client.FetchOffers(testContext(t))
	if err == nil {
		t.Fatal("FetchOffers succeeded on 500")
	}
	if notified {
		t.Fatal("500 response reached the notifier")
	}

	var se *StatusError
	if !errors.As(err, &se) || se.Message != "boom" {
		t.Fatalf("err = %v, want StatusError with envelope message", err)
	}
}

func TestPlainBodyErrorKeepsStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not json", http.StatusNotFound)
	}))

	_, err := client.FetchOffer(testContext(t), "missing")
	if err == nil {
		t.Fatal("FetchOffer succeeded on 404")
	}
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound = false for %v", err)
	}
	if msg := ServerMessage(err); msg != "" {
		t.Fatalf("ServerMessage = %q, want empty for undecodable body", msg)
	}
}

func TestDecodeError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))

	_, err := client.FetchOffers(testContext(t))
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("err = %v, want decode response error", err)
	}
}

func TestIsNotFoundOnWrappedError(t *testing.T) {
	base := &StatusError{StatusCode: http.StatusNotFound, Path: "/offers/x"}
	wrapped := wrap(base)
	if !IsNotFound(wrapped) {
		t.Fatal("IsNotFound = false for wrapped 404")
	}
	if IsNotFound(errors.New("plain")) {
		t.Fatal("IsNotFound = true for plain error")
	}
}

func wrap(err error) error {
	return &wrappedError{err: err}
}

type wrappedError struct{ err error }

func (w *wrappedError) Error() string { return "wrapped: " + w.err.Error() }
func (w *wrappedError) Unwrap() error { return w.err }

func TestParseBaseURLDefaults(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("base = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("localhost:8080")
	if err != nil {
		t.Fatalf("parseBaseURL: %v", err)
	}
	if u.Scheme != "http" || u.Host != "localhost:8080" {
		t.Fatalf("base = %#v", u)
	}
}
