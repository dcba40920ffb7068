package app

import (
	"context"
	"fmt"
	"log"

	"github.com/wswfws/2673517-six-cities-6/internal/config"
	"github.com/wswfws/2673517-six-cities-6/internal/notify"
	"github.com/wswfws/2673517-six-cities-6/internal/prefs"
	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
	"github.com/wswfws/2673517-six-cities-6/internal/state"
	"github.com/wswfws/2673517-six-cities-6/internal/token"
	"github.com/wswfws/2673517-six-cities-6/internal/ui"
	"github.com/wswfws/2673517-six-cities-6/internal/workflow"
)

// Options configure the six-cities application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/sixcities/prefs.toml
	BaseURL    string // overrides the configured backend when set
}

// Run boots the TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	tokens, err := token.Open(cfg.TokenPath)
	if err != nil {
		return fmt.Errorf("open token store: %w", err)
	}

	center := notify.NewCenter()

	client, err := sixcities.NewClient(cfg.BaseURL,
		sixcities.WithTokenSource(tokens.Get),
		sixcities.WithNotifier(center.Notify),
		sixcities.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := state.NewStore()

	// Bootstrap: resolve the session exactly once, then load the catalog.
	// Both run before the UI starts so the first frame has real data when
	// the backend is quick; failures are recoverable and just logged.
	workflow.CheckSession(ctx, store, client)
	if err := workflow.FetchListing(ctx, store, client); err != nil {
		log.Printf("initial listing fetch failed: %v", err)
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Tokens:    tokens,
		Notices:   center,
		ThemeName: userPrefs.Theme,
		City:      userPrefs.City,
		Sort:      userPrefs.Sort,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
