package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeai/resume-assistant/internal/services"
)

func fastPolicy(attempts int) services.RetryPolicy {
	return services.RetryPolicy{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		Timeout:      time.Second,
	}
}

func TestRetryingClientRecovers(t *testing.T) {
	flaky := &scriptedClient{respond: func(call int, req services.CompletionRequest) (string, error) {
		if call < 3 {
			return "", errors.New("503 service unavailable")
		}
		return "done", nil
	}}
	client := services.NewRetryingClient(flaky, fastPolicy(3))

	text, err := client.Complete(context.Background(), services.CompletionRequest{Prompt: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "done", text)
	assert.Len(t, flaky.calls(), 3)
}

func TestRetryingClientExhausted(t *testing.T) {
	failing := &scriptedClient{respond: func(call int, req services.CompletionRequest) (string, error) {
		return "", fmt.Errorf("attempt %d failed", call)
	}}
	client := services.NewRetryingClient(failing, fastPolicy(2))

	_, err := client.Complete(context.Background(), services.CompletionRequest{Prompt: "hi"})

	require.Error(t, err)
	assert.Len(t, failing.calls(), 2)
	assert.Contains(t, err.Error(), "after 2 attempt(s)")
	assert.Contains(t, err.Error(), "attempt 2 failed")
}

func TestRetryingClientPermanentError(t *testing.T) {
	rejected := &scriptedClient{respond: func(call int, req services.CompletionRequest) (string, error) {
		return "", fmt.Errorf("bad request: %w", services.ErrPermanent)
	}}
	client := services.NewRetryingClient(rejected, fastPolicy(5))

	_, err := client.Complete(context.Background(), services.CompletionRequest{Prompt: "hi"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrPermanent))
	assert.Len(t, rejected.calls(), 1)
}

func TestRetryingClientAttemptTimeout(t *testing.T) {
	var calls atomic.Int32
	hanging := clientFunc(func(ctx context.Context, req services.CompletionRequest) (string, error) {
		calls.Add(1)
		<-ctx.Done()
		return "", ctx.Err()
	})
	client := services.NewRetryingClient(hanging, services.RetryPolicy{
		MaxAttempts:  2,
		InitialDelay: time.Millisecond,
		Timeout:      20 * time.Millisecond,
	})

	_, err := client.Complete(context.Background(), services.CompletionRequest{Prompt: "hi"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, int32(2), calls.Load(), "each attempt gets its own timeout")
}

func TestRetryingClientCallerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	cancelling := clientFunc(func(_ context.Context, req services.CompletionRequest) (string, error) {
		calls++
		cancel()
		return "", errors.New("connection reset")
	})
	client := services.NewRetryingClient(cancelling, fastPolicy(5))

	_, err := client.Complete(ctx, services.CompletionRequest{Prompt: "hi"})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

type clientFunc func(ctx context.Context, req services.CompletionRequest) (string, error)

func (f clientFunc) Complete(ctx context.Context, req services.CompletionRequest) (string, error) {
	return f(ctx, req)
}
