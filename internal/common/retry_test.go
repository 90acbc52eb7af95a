package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetrySucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return nil
	}, RetryOptions{MaxAttempts: 3})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetrySingleAttemptReturnsBareError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0

	err := WithRetry(context.Background(), func() error {
		calls++
		return boom
	}, RetryOptions{MaxAttempts: 1})

	assert.Equal(t, 1, calls)
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrMaxRetries)
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return &RetryableError{Err: errors.New("transient"), Retryable: true}
	}, RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond})

	assert.Equal(t, 3, calls)
	require.ErrorIs(t, err, ErrMaxRetries)
}

func TestWithRetryRecoversOnLaterAttempt(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return &RetryableError{Err: errors.New("transient"), Retryable: true}
		}
		return nil
	}, RetryOptions{MaxAttempts: 5, InitialDelay: time.Millisecond})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetryStopsOnNonRetryable(t *testing.T) {
	calls := 0
	permanent := &RetryableError{Err: errors.New("bad request"), Retryable: false}

	err := WithRetry(context.Background(), func() error {
		calls++
		return permanent
	}, RetryOptions{MaxAttempts: 5, InitialDelay: time.Millisecond})

	assert.Equal(t, 1, calls)
	require.ErrorIs(t, err, permanent.Err)
}

func TestWithRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := WithRetry(ctx, func() error {
		calls++
		cancel()
		return &RetryableError{Err: errors.New("transient"), Retryable: true}
	}, RetryOptions{MaxAttempts: 5, InitialDelay: 10 * time.Millisecond})

	assert.Equal(t, 1, calls)
	require.ErrorIs(t, err, context.Canceled)
}

func TestWithRetryDefaultsToSingleAttempt(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return errors.New("boom")
	}, RetryOptions{})

	assert.Equal(t, 1, calls)
	require.Error(t, err)
}
