package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
	"github.com/wswfws/2673517-six-cities-6/internal/token"
)

// Config captures the connection settings for the six-cities backend.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	TokenPath string
}

const (
	defaultConfigPath = "~/.config/sixcities/config.toml"
	defaultTimeout    = 5 * time.Second
)

// Load locates and parses the config file, falling back to defaults when
// missing. An absent file is not an error; the hosted backend works out of
// the box.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseURL:   sixcities.DefaultBaseURL,
		Timeout:   defaultTimeout,
		TokenPath: token.DefaultPath(),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL   string `toml:"base_url"`
		TimeoutMS int    `toml:"timeout_ms"`
		TokenPath string `toml:"token_path"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.BaseURL); base != "" {
		cfg.BaseURL = base
	}
	if raw.TimeoutMS > 0 {
		cfg.Timeout = time.Duration(raw.TimeoutMS) * time.Millisecond
	}
	if tokenPath := strings.TrimSpace(raw.TokenPath); tokenPath != "" {
		cfg.TokenPath = tokenPath
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
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
