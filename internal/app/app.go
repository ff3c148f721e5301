package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/evohq/evopanel/internal/backend"
	"github.com/evohq/evopanel/internal/config"
	"github.com/evohq/evopanel/internal/prefs"
	"github.com/evohq/evopanel/internal/state"
	"github.com/evohq/evopanel/internal/ui"
)

// Options configure the evopanel application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/evopanel/prefs.toml
	AdminBind  string // overrides the config file when set
	PollEvery  int    // seconds; zero uses the config value
}

// Run boots the evopanel TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.AdminBind != "" {
		cfg.AdminBind = opts.AdminBind
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := backend.NewClient(cfg.AdminBind)
	if err != nil {
		return fmt.Errorf("init backend client: %w", err)
	}

	// The shared stores are built exactly once here and injected into
	// the UI; views never construct their own.
	stores := state.New(client)
	defer stores.Close()

	interval := time.Duration(cfg.PollSeconds) * time.Second
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Attach the single event-stream subscription. A daemon that is
	// down at startup is tolerated; the poller re-attaches once it is
	// reachable again.
	if err := stores.Logs.StartListening(ctx); err != nil {
		log.Printf("event stream unavailable: %v", err)
	}

	// Initial refresh to populate the stores before the UI starts.
	initCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	_ = stores.Server.Refresh(initCtx)
	_ = stores.Logs.Fetch(initCtx)
	cancel()

	StartPoller(ctx, stores, interval)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Stores:    stores,
		PollTick:  interval,
		ThemeName: userPrefs.Theme,
		StartTab:  userPrefs.Tab,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
