package source

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zeroDelayPolicy(attempts int) RetryPolicy {
	return RetryPolicy{MaxAttempts: attempts, InitialBackoff: time.Microsecond, MaxBackoff: time.Microsecond}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestRetry_TemporaryThenSuccess(t *testing.T) {
	calls := 0
	err := zeroDelayPolicy(3).Do(context.Background(), discardLogger(), "test", func() error {
		calls++
		if calls < 3 {
			return &APIError{Status: 503}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_PermanentNotRetried(t *testing.T) {
	calls := 0
	err := zeroDelayPolicy(5).Do(context.Background(), discardLogger(), "test", func() error {
		calls++
		return &APIError{Status: 404}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, IsNotFound(err))
}

func TestRetry_Exhaustion(t *testing.T) {
	calls := 0
	err := zeroDelayPolicy(3).Do(context.Background(), discardLogger(), "test", func() error {
		calls++
		return &APIError{Status: 429}
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.True(t, IsTemporary(err))
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	policy := RetryPolicy{MaxAttempts: 3, InitialBackoff: time.Minute, MaxBackoff: time.Minute}
	err := policy.Do(ctx, discardLogger(), "test", func() error {
		return &APIError{Status: 500}
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackoff_DoublesAndCaps(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 5, InitialBackoff: 2 * time.Second, MaxBackoff: 5 * time.Second}

	assert.Equal(t, 2*time.Second, p.backoff(1))
	assert.Equal(t, 4*time.Second, p.backoff(2))
	assert.Equal(t, 5*time.Second, p.backoff(3))
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		temporary bool
		notFound  bool
	}{
		{"rate limited", &APIError{Status: 429}, true, false},
		{"bad gateway", &APIError{Status: 502}, true, false},
		{"not found", &APIError{Status: 404}, false, true},
		{"forbidden", &APIError{Status: 403}, false, true},
		{"bad request", &APIError{Status: 400}, false, false},
		{"timeout", context.DeadlineExceeded, true, false},
		{"dns failure", &net.DNSError{IsTimeout: true}, true, false},
		{"plain error", errors.New("boom"), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.temporary, IsTemporary(tt.err))
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
		})
	}
}
