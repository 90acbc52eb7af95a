package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAcquiresUpToCapacity(t *testing.T) {
	rl := newRateLimiter(3)
	defer rl.Close()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.tryAcquire(), "token %d", i)
	}
	assert.False(t, rl.tryAcquire())
}

func TestRateLimiterWaitHonorsContext(t *testing.T) {
	rl := newRateLimiter(1)
	defer rl.Close()

	require.NoError(t, rl.wait(context.Background()))

	// Bucket is empty; a canceled context must unblock the waiter.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := rl.wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
