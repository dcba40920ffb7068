package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wswfws/2673517-six-cities-6/internal/notify"
	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
	"github.com/wswfws/2673517-six-cities-6/internal/state"
	"github.com/wswfws/2673517-six-cities-6/internal/token"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    sixcities.Backend
	Store     *state.Store
	Tokens    *token.Store
	Notices   *notify.Center
	ThemeName string
	City      string
	Sort      string
	PrefsPath string
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	if opts.Client == nil {
		return fmt.Errorf("ui requires an api client")
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	program := tea.NewProgram(New(opts))

	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	_, err := program.Run()
	return err
}
