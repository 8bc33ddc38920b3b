package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/readrawhex/gantry/internal/state"
	"github.com/readrawhex/gantry/octoprint"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

func secondsToDuration(s int) time.Duration {
	return time.Duration(s) * time.Second
}

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence. It returns immediately. When polls keep failing the cadence
// backs off exponentially up to maxBackoff.
func StartPoller(ctx context.Context, store *state.Store, client *octoprint.Client, interval time.Duration, logger zerolog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			refresh(ctx, store, client, logger)

			failures := store.Snapshot().ConsecutiveFailures
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
}

// calculateBackoff doubles the base interval per consecutive failure, capped
// at maxBackoff. Zero failures returns the base interval unchanged.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}

func refresh(ctx context.Context, store *state.Store, client *octoprint.Client, logger zerolog.Logger) {
	printer, err := client.State(ctx, octoprint.StateOptions{})
	if err != nil {
		store.Update(nil, nil, err)
		logger.Warn().Err(err).Str("endpoint", "/api/printer").Msg("state poll failed")
		return
	}
	job, err := client.Job(ctx)
	if err != nil {
		store.Update(nil, nil, err)
		logger.Warn().Err(err).Str("endpoint", "/api/job").Msg("job poll failed")
		return
	}
	store.Update(printer, job, nil)
}
