package libs

import (
	"context"
	"log"
	"sync"
	"time"
)

// AutoRefresher periodically invokes a caller-supplied refresh callback and
// remembers when it last ran. Manual refreshes keep the busy flag raised for a
// minimum window so a fast round-trip still reads as activity in the UI.
type AutoRefresher struct {
	mu            sync.Mutex
	interval      time.Duration
	minVisible    time.Duration
	onRefresh     func(context.Context) error
	lastRefreshed time.Time
	refreshing    bool
}

func NewAutoRefresher(interval time.Duration, onRefresh func(context.Context) error) *AutoRefresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &AutoRefresher{
		interval:   interval,
		minVisible: time.Second,
		onRefresh:  onRefresh,
	}
}

// SetMinVisible overrides the manual-refresh busy window (used by tests).
func (r *AutoRefresher) SetMinVisible(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.minVisible = d
}

// Start runs the periodic loop until ctx is cancelled.
func (r *AutoRefresher) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := r.run(ctx); err != nil {
					log.Printf("Flash sale refresh failed: %v", err)
				}
			}
		}
	}()
}

// Refresh performs an on-demand refresh, holding the busy flag for at least
// the minimum visible window.
func (r *AutoRefresher) Refresh(ctx context.Context) error {
	r.mu.Lock()
	if r.refreshing {
		r.mu.Unlock()
		return nil
	}
	r.refreshing = true
	minVisible := r.minVisible
	r.mu.Unlock()

	started := time.Now()
	err := r.run(ctx)

	if elapsed := time.Since(started); elapsed < minVisible {
		time.Sleep(minVisible - elapsed)
	}

	r.mu.Lock()
	r.refreshing = false
	r.mu.Unlock()

	return err
}

func (r *AutoRefresher) run(ctx context.Context) error {
	if r.onRefresh != nil {
		if err := r.onRefresh(ctx); err != nil {
			return err
		}
	}

	r.mu.Lock()
	r.lastRefreshed = time.Now()
	r.mu.Unlock()
	return nil
}

func (r *AutoRefresher) LastRefreshed() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastRefreshed
}

func (r *AutoRefresher) Refreshing() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshing
}
