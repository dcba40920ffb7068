package sixcities

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Backend defines the resource fetchers the rest of the application depends
// on. This interface is implemented by *Client and can be used for testing.
type Backend interface {
	FetchOffers(ctx context.Context) ([]Place, error)
	FetchOffer(ctx context.Context, id string) (*PlaceDetail, error)
	FetchNearby(ctx context.Context, id string) ([]Place, error)
	FetchComments(ctx context.Context, id string) ([]Review, error)
	PostComment(ctx context.Context, id string, payload CommentPayload) (*Review, error)
	SetFavoriteStatus(ctx context.Context, id string, status int) (*Place, error)
	Login(ctx context.Context, creds Credentials) (*Profile, error)
	FetchSession(ctx context.Context) (*Profile, error)
}

// Ensure Client implements Backend at compile time.
var _ Backend = (*Client)(nil)

// TokenSource returns the current session token, or "" when logged out.
// It is consulted on every request so a login that lands mid-session takes
// effect immediately.
type TokenSource func() string

// Notifier receives user-facing messages derived from backend error
// envelopes. Severity is "error" for field-level details and "warning" for
// the envelope summary, matching how the web client toasts them.
type Notifier func(severity, message string)

// Client talks to the six-cities HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	token     TokenSource
	notify    Notifier
}

const (
	// DefaultBaseURL is the hosted six-cities backend.
	DefaultBaseURL = "https://14.design.htmlacademy.pro/six-cities"

	defaultUserAgent = "sixcities/0.1"
	requestTimeout   = 5 * time.Second

	tokenHeader = "X-Token"
)

// Option customizes a Client.
type Option func(*Client)

// WithTokenSource attaches a session token source to every request.
func WithTokenSource(src TokenSource) Option {
	return func(c *Client) { c.token = src }
}

// WithNotifier routes backend error-envelope messages to fn.
func WithNotifier(fn Notifier) Option {
	return func(c *Client) { c.notify = fn }
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// NewClient builds a Client for the given base URL. An empty baseURL selects
// the hosted backend.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchOffers retrieves the full listing catalog. City filtering happens
// client-side on the cached result.
func (c *Client) FetchOffers(ctx context.Context) ([]Place, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Place
	if err := c.do(ctx, http.MethodGet, "/offers", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchOffer retrieves the full record for one listing.
func (c *Client) FetchOffer(ctx context.Context, id string) (*PlaceDetail, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("offer id required")
	}
	var payload PlaceDetail
	if err := c.do(ctx, http.MethodGet, "/offers/"+id, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchNearby retrieves listings close to the given one.
func (c *Client) FetchNearby(ctx context.Context, id string) ([]Place, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("offer id required")
	}
	var payload []Place
	if err := c.do(ctx, http.MethodGet, "/offers/"+id+"/nearby", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchComments retrieves every review for the given listing.
func (c *Client) FetchComments(ctx context.Context, id string) ([]Review, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("offer id required")
	}
	var payload []Review
	if err := c.do(ctx, http.MethodGet, "/comments/"+id, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// PostComment submits a review and returns the stored copy.
func (c *Client) PostComment(ctx context.Context, id string, payload CommentPayload) (*Review, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("offer id required")
	}
	var review Review
	if err := c.do(ctx, http.MethodPost, "/comments/"+id, payload, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// SetFavoriteStatus toggles the favorite flag server-side. Status is 1 to
// mark the listing and 0 to clear it; the updated listing is returned.
func (c *Client) SetFavoriteStatus(ctx context.Context, id string, status int) (*Place, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("offer id required")
	}
	if status != 0 && status != 1 {
		return nil, fmt.Errorf("favorite status must be 0 or 1, got %d", status)
	}
	var place Place
	path := fmt.Sprintf("/favorite/%s/%d", id, status)
	if err := c.do(ctx, http.MethodPost, path, nil, &place); err != nil {
		return nil, err
	}
	return &place, nil
}

// Login authenticates with email and password, returning the profile with a
// fresh session token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*Profile, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var profile Profile
	if err := c.do(ctx, http.MethodPost, "/login", creds, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// FetchSession validates the current token and returns the profile behind it.
func (c *Client) FetchSession(ctx context.Context) (*Profile, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/login", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	// The hosted backend lives under a path prefix (/six-cities), so the
	// request path is appended to the base path rather than resolved
	// against it.
	reqURL := *c.baseURL
	reqURL.Path = c.baseURL.Path + path

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if tok := strings.TrimSpace(c.token()); tok != "" {
			req.Header.Set(tokenHeader, tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return c.statusError(path, resp)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError builds the error for a non-2xx response. For the status codes
// the web client toasts (400, 401, 404) a decodable envelope is also fanned
// out to the notifier: one error per field detail plus a warning summary.
func (c *Client) statusError(path string, resp *http.Response) error {
	se := &StatusError{StatusCode: resp.StatusCode, Path: path}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(raw) == 0 {
		return se
	}
	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return se
	}
	se.Message = envelope.Message
	se.Details = envelope.Details

	if c.notify != nil && shouldDisplay(resp.StatusCode) {
		for _, detail := range envelope.Details {
			c.notify("error", fmt.Sprintf("%s: %s", detail.Property, strings.Join(detail.Messages, ", ")))
		}
		if strings.TrimSpace(envelope.Message) != "" {
			c.notify("warning", envelope.Message)
		}
	}
	return se
}

func shouldDisplay(status int) bool {
	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound:
		return true
	default:
		return false
	}
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
