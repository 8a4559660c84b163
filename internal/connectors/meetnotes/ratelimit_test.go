package meetnotes

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_EnforcesMinimumSpacing(t *testing.T) {
	interval := 50 * time.Millisecond
	rl := NewRateLimiter(interval)

	const calls = 4
	var (
		mu    sync.Mutex
		times []time.Time
		wg    sync.WaitGroup
	)

	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, rl.Wait(context.Background()))
			mu.Lock()
			times = append(times, time.Now())
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	for i := 1; i < len(times); i++ {
		gap := times[i].Sub(times[i-1])
		// Small tolerance for timestamping after the wait returns.
		assert.GreaterOrEqual(t, gap, interval-5*time.Millisecond,
			"calls %d and %d too close together", i-1, i)
	}
}

func TestRateLimiter_DoesNotSerialiseAfterWait(t *testing.T) {
	rl := NewRateLimiter(time.Millisecond)

	// The limiter only gates the wait; nothing is held afterwards, so a
	// second caller can proceed while the first is mid-"network call".
	require.NoError(t, rl.Wait(context.Background()))

	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, rl.Wait(context.Background()))
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second caller blocked behind first caller's work")
	}
}

func TestRateLimiter_WaitCancellable(t *testing.T) {
	rl := NewRateLimiter(10 * time.Second)
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := rl.Wait(ctx)
	assert.Error(t, err)
}

func TestRateLimiter_RecordRateLimitError(t *testing.T) {
	rl := NewRateLimiter(time.Millisecond)
	rl.RecordRateLimitError(40 * time.Millisecond)

	start := time.Now()
	require.NoError(t, rl.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 35*time.Millisecond)
}
