package merakibridge

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Timer granularity slack so spacing assertions don't flake on loaded
// machines.
const spacingSlack = 5 * time.Millisecond

func TestRateLimiterFirstAdmitImmediate(t *testing.T) {
	limiter := NewRateLimiter(time.Second)

	start := time.Now()
	require.NoError(t, limiter.Admit(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestRateLimiterSequentialSpacing(t *testing.T) {
	interval := 50 * time.Millisecond
	limiter := NewRateLimiter(interval)

	var stamps []time.Time
	for i := 0; i < 4; i++ {
		require.NoError(t, limiter.Admit(context.Background()))
		stamps = append(stamps, time.Now())
	}
	for i := 1; i < len(stamps); i++ {
		gap := stamps[i].Sub(stamps[i-1])
		assert.GreaterOrEqual(t, gap, interval-spacingSlack, "admissions %d and %d too close", i-1, i)
	}
}

func TestRateLimiterConcurrentSpacing(t *testing.T) {
	interval := 50 * time.Millisecond
	limiter := NewRateLimiter(interval)

	var (
		mu     sync.Mutex
		stamps []time.Time
		wg     sync.WaitGroup
	)
	start := time.Now()
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, limiter.Admit(context.Background()))
			mu.Lock()
			stamps = append(stamps, time.Now())
			mu.Unlock()
		}()
	}
	wg.Wait()

	// 5 admissions cost at least 4 intervals even when all callers arrive
	// at once.
	assert.GreaterOrEqual(t, time.Since(start), 4*interval-spacingSlack)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, stamps, 5)
	sort.Slice(stamps, func(i, j int) bool { return stamps[i].Before(stamps[j]) })
	for i := 1; i < len(stamps); i++ {
		// Generous slack: the stamp is taken after Admit returns, and
		// goroutine scheduling adds jitter on top of the admission time.
		assert.GreaterOrEqual(t, stamps[i].Sub(stamps[i-1]), interval/2)
	}
}

func TestRateLimiterAdmitCancelled(t *testing.T) {
	limiter := NewRateLimiter(time.Minute)
	require.NoError(t, limiter.Admit(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, limiter.Admit(ctx))
}

func TestRateLimiterDefaultInterval(t *testing.T) {
	limiter := NewRateLimiter(0)
	assert.Equal(t, DefaultRateLimitInterval, limiter.Interval())
}
