package app

import (
	"context"
	"log"
	"time"

	"github.com/evohq/evopanel/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that reconciles the
// server mirror at a fixed cadence and re-attaches the event stream
// after an outage. It returns immediately.
func StartPoller(ctx context.Context, stores *state.Stores, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			refresh(ctx, stores)

			// Back off while the daemon is unreachable so a dead
			// daemon doesn't get hammered.
			wait := calculateBackoff(stores.Server.Snapshot().ConsecutiveFailures, interval)
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
			}
		}
	}()
}

func refresh(ctx context.Context, stores *state.Stores) {
	if err := stores.Server.Refresh(ctx); err != nil {
		log.Printf("status poll failed: %v", err)
		return
	}
	// Daemon reachable again: make sure the log subscription is live
	// and reconcile anything missed while it was down.
	if !stores.Logs.Listening() {
		if err := stores.Logs.StartListening(ctx); err != nil {
			log.Printf("event stream reattach failed: %v", err)
			return
		}
		if err := stores.Logs.Fetch(ctx); err != nil {
			log.Printf("log fetch failed: %v", err)
		}
	}
}

// calculateBackoff doubles the interval per consecutive failure,
// capped at maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	wait := interval
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
