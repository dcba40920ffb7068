package sixcities

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorDetail is one field-level entry in the backend error envelope.
type ErrorDetail struct {
	Property string   `json:"property"`
	Value    string   `json:"value"`
	Messages []string `json:"messages"`
}

// errorEnvelope mirrors the body the backend sends with 400/401/404 responses.
type errorEnvelope struct {
	ErrorType string        `json:"errorType"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details"`
}

// StatusError reports a non-2xx backend response. Message and Details are
// populated when the response carried a decodable error envelope.
type StatusError struct {
	StatusCode int
	Path       string
	Message    string
	Details    []ErrorDetail
}

func (e *StatusError) Error() string {
	if strings.TrimSpace(e.Message) != "" {
		return fmt.Sprintf("api %s returned status %d: %s", e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api %s returned status %d", e.Path, e.StatusCode)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// ServerMessage extracts the envelope message from err, if any.
func ServerMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return strings.TrimSpace(se.Message)
	}
	return ""
}
