package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstWaitIsImmediate(t *testing.T) {
	r := NewSimpleRateLimiter(time.Second, time.Second)

	start := time.Now()
	require.NoError(t, r.Wait(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestWaitEnforcesMinimumDelay(t *testing.T) {
	r := NewSimpleRateLimiter(50*time.Millisecond, 50*time.Millisecond)

	ctx := context.Background()
	require.NoError(t, r.Wait(ctx))

	start := time.Now()
	require.NoError(t, r.Wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestWaitRespectsContextCancellation(t *testing.T) {
	r := NewSimpleRateLimiter(time.Minute, time.Minute)

	ctx := context.Background()
	require.NoError(t, r.Wait(ctx))

	cancelled, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()

	err := r.Wait(cancelled)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestZeroDelayNeverBlocks(t *testing.T) {
	r := NewSimpleRateLimiter(0, 0)

	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 10; i++ {
		require.NoError(t, r.Wait(ctx))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestSetDelay(t *testing.T) {
	r := NewSimpleRateLimiter(time.Minute, time.Minute)
	r.SetDelay(0, 0)

	ctx := context.Background()
	require.NoError(t, r.Wait(ctx))

	start := time.Now()
	require.NoError(t, r.Wait(ctx))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}
