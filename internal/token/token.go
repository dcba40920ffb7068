// Package token persists the six-cities session token between runs.
// The web client keeps it in browser local storage; here it lives in a
// single file under the user's config directory.
package token

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultTokenPath = "~/.config/sixcities/token"

// DefaultPath returns the default token file path.
func DefaultPath() string {
	return defaultTokenPath
}

// Store is a file-backed token holder. Get is cheap (in-memory cache);
// Save and Clear write through to disk. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	path  string
	token string
}

// Open resolves the token path and loads any previously saved token.
// A missing or unreadable file degrades to an empty token, the same way a
// cleared local storage key would.
func Open(path string) (*Store, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve token path: %w", err)
	}
	s := &Store{path: resolved}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, nil // graceful degradation, start logged out
	}
	s.token = strings.TrimSpace(string(raw))
	return s, nil
}

// Get returns the current token, or "" when logged out.
func (s *Store) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Save persists a new token, replacing any previous one.
func (s *Store) Save(token string) error {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return fmt.Errorf("token is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(trimmed+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	s.token = trimmed
	return nil
}

// Clear drops the token in memory and removes the file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultTokenPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
