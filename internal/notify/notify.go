// Package notify is the terminal stand-in for toast notifications: a small
// bounded buffer of user-facing messages rendered in the UI footer.
package notify

import (
	"sync"
	"time"
)

// Severity labels a notice for styling.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notice is one message with the time it was raised.
type Notice struct {
	Severity Severity
	Text     string
	At       time.Time
}

const defaultCapacity = 20

// Center collects notices from workflows and the HTTP client. Safe for
// concurrent use; oldest notices are dropped once capacity is reached.
type Center struct {
	mu      sync.Mutex
	notices []Notice
	cap     int
	now     func() time.Time
}

// NewCenter returns a Center holding at most the default number of notices.
func NewCenter() *Center {
	return &Center{cap: defaultCapacity, now: time.Now}
}

// Push records a notice.
func (c *Center) Push(severity Severity, text string) {
	if text == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notices = append(c.notices, Notice{Severity: severity, Text: text, At: c.now()})
	if overflow := len(c.notices) - c.cap; overflow > 0 {
		c.notices = append(c.notices[:0:0], c.notices[overflow:]...)
	}
}

// Notify adapts Push to the sixcities.Notifier signature used by the HTTP
// client's error-envelope hook.
func (c *Center) Notify(severity, text string) {
	switch severity {
	case string(SeverityError):
		c.Push(SeverityError, text)
	case string(SeverityWarning):
		c.Push(SeverityWarning, text)
	default:
		c.Push(SeverityInfo, text)
	}
}

// Recent returns up to n notices, newest last, raised within maxAge.
// A zero maxAge disables the age filter.
func (c *Center) Recent(n int, maxAge time.Duration) []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := time.Time{}
	if maxAge > 0 {
		cutoff = c.now().Add(-maxAge)
	}

	var recent []Notice
	for _, notice := range c.notices {
		if notice.At.Before(cutoff) {
			continue
		}
		recent = append(recent, notice)
	}
	if n > 0 && len(recent) > n {
		recent = recent[len(recent)-n:]
	}
	return recent
}
