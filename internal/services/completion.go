package services

import (
	"context"
	"fmt"

	"resumeai/resume-assistant/internal/config"
	"resumeai/resume-assistant/internal/models"
)

// CompletionRequest is one call to the language model. History holds prior
// turns of a conversation; Prompt is the new user message.
type CompletionRequest struct {
	System      string
	History     []models.ChatTurn
	Prompt      string
	Temperature float32
}

type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// NewCompletionClient builds the configured provider wrapped with the retry
// and timeout policy.
func NewCompletionClient(ctx context.Context, cfg config.LLMConfig) (CompletionClient, error) {
	var (
		client CompletionClient
		err    error
	)

	apiKey := cfg.APIKey()
	switch cfg.Provider {
	case config.ProviderGemini:
		client, err = NewGeminiService(ctx, apiKey, cfg.Model)
	case config.ProviderOpenAI:
		client, err = NewOpenAIService(apiKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown completion provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return NewRetryingClient(client, RetryPolicy{
		MaxAttempts:  cfg.RetryMaxAttempts,
		InitialDelay: cfg.RetryInitialDelay,
		Timeout:      cfg.Timeout,
	}), nil
}
