package app

import (
	"context"
	"fmt"

	"github.com/readrawhex/gantry/internal/config"
	"github.com/readrawhex/gantry/internal/logging"
	"github.com/readrawhex/gantry/internal/prefs"
	"github.com/readrawhex/gantry/internal/state"
	"github.com/readrawhex/gantry/internal/ui"
	"github.com/readrawhex/gantry/octoprint"
)

// Options configure the gantry application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/gantry/prefs.toml
	PollEvery  int    // seconds; zero uses the configured interval
}

// Run boots the gantry TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.New(cfg.LogPath())
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = closer.Close() }()

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := octoprint.New(cfg.BaseURL, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("init octoprint client: %w", err)
	}

	store := &state.Store{}

	interval := cfg.PollInterval
	if opts.PollEvery > 0 {
		interval = secondsToDuration(opts.PollEvery)
	}

	logger.Info().
		Str("base_url", cfg.BaseURL).
		Dur("poll_interval", interval).
		Msg("gantry starting")

	// Start background poller
	StartPoller(ctx, store, client, interval, logger)

	// Do initial refresh to populate store before UI starts
	refresh(ctx, store, client, logger)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Config:    &cfg,
		Logger:    logger,
		PollTick:  interval,
		ThemeName: userPrefs.Theme,
		Location:  userPrefs.Location,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
