package libs

import (
	"sync"
	"time"

	"fabric-store/models"
)

// CountdownTimer drives a per-deal countdown. Each instance owns exactly one
// ticker goroutine; Stop must be called when the owner goes away so no tick
// fires against a stale end date. The lifecycle is one-way Running -> Expired;
// Reset starts a fresh lifecycle against a new end date.
type CountdownTimer struct {
	mu       sync.Mutex
	end      time.Time
	interval time.Duration
	onTick   func(models.TimeLeft)
	onExpire func()
	stop     chan struct{}
	running  bool
	expired  bool
}

func NewCountdownTimer(end time.Time, onTick func(models.TimeLeft), onExpire func()) *CountdownTimer {
	return &CountdownTimer{
		end:      end,
		interval: time.Second,
		onTick:   onTick,
		onExpire: onExpire,
	}
}

// Start begins ticking once per second. Calling Start on a running or already
// expired timer is a no-op.
func (t *CountdownTimer) Start() {
	t.mu.Lock()
	if t.running || t.expired {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.stop = make(chan struct{})
	stop := t.stop
	t.mu.Unlock()

	// Immediate tick so the owner never waits a full interval for the first
	// reading; this also catches end dates already in the past.
	if t.tick() {
		return
	}

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if t.tick() {
					return
				}
			}
		}
	}()
}

// tick recomputes the remaining time and reports whether the countdown ended.
func (t *CountdownTimer) tick() bool {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return true
	}
	left := models.CalcTimeLeft(t.end, time.Now())
	var expireNow bool
	if left.Expired() && !t.expired {
		t.expired = true
		t.running = false
		expireNow = true
	}
	onTick := t.onTick
	onExpire := t.onExpire
	t.mu.Unlock()

	if onTick != nil {
		onTick(left)
	}
	if expireNow {
		if onExpire != nil {
			onExpire()
		}
		return true
	}
	return false
}

// Stop releases the ticker. Safe to call repeatedly and after expiry.
func (t *CountdownTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *CountdownTimer) stopLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
	t.running = false
}

// Reset cancels the current lifecycle and re-arms against a new end date.
func (t *CountdownTimer) Reset(end time.Time) {
	t.mu.Lock()
	t.stopLocked()
	t.end = end
	t.expired = false
	t.mu.Unlock()

	t.Start()
}

func (t *CountdownTimer) Expired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.expired
}

func (t *CountdownTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
