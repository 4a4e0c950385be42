package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/newsdesk/newsdesk/pkg/gateway"
	"github.com/newsdesk/newsdesk/pkg/localstate"
	"github.com/newsdesk/newsdesk/pkg/panel"
	"github.com/newsdesk/newsdesk/pkg/settings"
)

// app is the client wired together by bootstrap
type app struct {
	gateway  *gateway.Client
	store    *settings.Store
	local    *localstate.Store
	theme    panel.Theme
	sidebar  *panel.Sidebar
	modal    *panel.Modal
	preview  *panel.Preview
	tooltips *panel.Tooltips
	degraded bool // settings are defaults, backend was not available
}

// bootstrap makes the gateway and the settings store, waits for the store to load and only
// then registers the panels, each getting the loaded settings right away. A failed load
// leaves the app usable with default settings and a warning.
func bootstrap(ctx context.Context, opts Opts) (*app, error) {
	local, err := openLocal(opts)
	if err != nil {
		return nil, err
	}

	gw := gateway.New(gateway.Config{BaseURL: opts.Backend, UserID: opts.User, Timeout: opts.Timeout})
	store := settings.New(settings.Config{Gateway: gw, Logger: lgr.Default(), RetryFunc: saveRetry})

	a := &app{gateway: gw, store: store, local: local, theme: panel.NewTheme(local.Theme())}
	a.sidebar = panel.NewSidebar(store, a.theme)
	a.modal = panel.NewModal(store, a.theme)
	a.preview = panel.NewPreview(a.theme, gw, lgr.Default())
	a.tooltips = panel.NewTooltips(store, a.theme)

	if ok := store.Init(ctx); !ok {
		log.Printf("[WARN] backend %s is not available, using default settings", opts.Backend)
		a.degraded = true
		a.sidebar.SetDegraded(true)
	}

	listeners := []settings.Listener{a.sidebar, a.modal, a.preview, a.tooltips}
	if !a.degraded {
		// defaults must not replace the last snapshot synced from the backend
		listeners = append(listeners, local)
	}
	for _, l := range listeners {
		store.AddListener(l)
	}
	a.preview.SetText(local.Draft())
	return a, nil
}

// openLocal opens the local state file, a corrupted file is reported and replaced by empty state
func openLocal(opts Opts) (*localstate.Store, error) {
	path := opts.State
	if path == "" {
		path = defaultStatePath()
	}
	local, err := localstate.Open(path, localstate.DefaultMaxHistory)
	if err != nil {
		if !errors.Is(err, localstate.ErrCorrupted) {
			return nil, fmt.Errorf("failed to open local state: %w", err)
		}
		log.Printf("[WARN] %v, starting with empty local state", err)
	}
	return local, nil
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "newsdesk-state.yml"
	}
	return filepath.Join(dir, "newsdesk", "state.yml")
}

// saveRetry retries failed settings saves with backoff, only transport errors are retried
func saveRetry(ctx context.Context, op func() error) error {
	errStop := errors.New("stop")
	var lastErr error
	err := repeater.NewBackoff(3, 200*time.Millisecond, repeater.WithMaxDelay(2*time.Second)).Do(ctx, func() error {
		lastErr = op()
		var netErr *gateway.NetworkError
		if lastErr != nil && !errors.As(lastErr, &netErr) {
			return errStop
		}
		return lastErr
	}, errStop)
	if lastErr != nil {
		return lastErr
	}
	return err
}
