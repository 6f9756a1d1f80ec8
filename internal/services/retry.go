package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"resumeai/resume-assistant/internal/logger"
)

type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	// Timeout bounds each attempt, not the whole call.
	Timeout time.Duration
}

type retryingClient struct {
	next   CompletionClient
	policy RetryPolicy
}

// NewRetryingClient retries failed completions with exponential backoff.
// Errors wrapping ErrPermanent and cancellation of the caller's context stop
// retrying immediately.
func NewRetryingClient(next CompletionClient, policy RetryPolicy) CompletionClient {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.InitialDelay <= 0 {
		policy.InitialDelay = time.Second
	}
	return &retryingClient{next: next, policy: policy}
}

// Complete implements CompletionClient.
func (r *retryingClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = r.policy.InitialDelay
	expo.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, uint64(r.policy.MaxAttempts-1)), ctx)

	var (
		text    string
		attempt int
	)
	operation := func() error {
		attempt++

		callCtx := ctx
		if r.policy.Timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, r.policy.Timeout)
			defer cancel()
		}

		result, err := r.next.Complete(callCtx, req)
		if err != nil {
			if errors.Is(err, ErrPermanent) || ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			if errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("completion timed out after %s: %w", r.policy.Timeout, err)
			}
			return err
		}
		text = result
		return nil
	}

	notify := func(err error, wait time.Duration) {
		logger.Ctx(ctx).Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("retry_in", wait).
			Msg("⚠️ completion attempt failed, retrying")
	}

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return "", fmt.Errorf("completion failed after %d attempt(s): %w", attempt, err)
	}
	return text, nil
}
