package app

import (
	"context"
	"log"
	"time"

	"github.com/five82/alertface/internal/appmsg"
	"github.com/five82/alertface/internal/state"
)

const (
	defaultPollInterval = 5 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that checks the companion
// link and records the result in store. It backs off exponentially while the
// companion is unreachable and returns immediately.
func StartPoller(ctx context.Context, store *state.Store, fetcher appmsg.StatusFetcher, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		failures := 0
		for {
			if refresh(ctx, store, fetcher) {
				failures = 0
			} else {
				failures++
			}
			timer := time.NewTimer(calculateBackoff(failures, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

func refresh(ctx context.Context, store *state.Store, fetcher appmsg.StatusFetcher) bool {
	status, err := fetcher.FetchStatus(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		store.Update(nil, err)
		log.Printf("link poll failed: %v", err)
		return false
	}
	store.Update(status, nil)
	return true
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
