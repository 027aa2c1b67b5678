package libs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshRunsCallbackAndStampsTime(t *testing.T) {
	var calls int32
	r := NewAutoRefresher(time.Minute, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	r.SetMinVisible(0)

	require.True(t, r.LastRefreshed().IsZero())
	require.NoError(t, r.Refresh(context.Background()))

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.False(t, r.LastRefreshed().IsZero())
	assert.False(t, r.Refreshing())
}

func TestRefreshHoldsMinimumVisibleWindow(t *testing.T) {
	r := NewAutoRefresher(time.Minute, func(ctx context.Context) error { return nil })
	r.SetMinVisible(50 * time.Millisecond)

	started := time.Now()
	require.NoError(t, r.Refresh(context.Background()))

	assert.GreaterOrEqual(t, time.Since(started), 50*time.Millisecond)
	assert.False(t, r.Refreshing())
}

func TestRefreshErrorDoesNotStampTime(t *testing.T) {
	r := NewAutoRefresher(time.Minute, func(ctx context.Context) error {
		return errors.New("upstream unavailable")
	})
	r.SetMinVisible(0)

	assert.Error(t, r.Refresh(context.Background()))
	assert.True(t, r.LastRefreshed().IsZero())
}

func TestPeriodicLoopRefreshes(t *testing.T) {
	var calls int32
	r := NewAutoRefresher(10*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	time.Sleep(55 * time.Millisecond)
	cancel()

	got := atomic.LoadInt32(&calls)
	assert.GreaterOrEqual(t, got, int32(2))
	assert.False(t, r.LastRefreshed().IsZero())
}

func TestDefaultIntervalApplied(t *testing.T) {
	r := NewAutoRefresher(0, nil)
	assert.Equal(t, 30*time.Second, r.interval)
}
