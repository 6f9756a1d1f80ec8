package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"resumeai/resume-assistant/internal/models"
)

const defaultOpenAIModel = "gpt-4o-mini"

type openAIService struct {
	client *openai.Client
	model  openai.ChatModel
}

// NewOpenAIService creates an OpenAI chat completion client. SDK-level retries
// are disabled; the retrying wrapper owns that policy.
func NewOpenAIService(apiKey, model string, opts ...option.RequestOption) (CompletionClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is empty: %w", ErrPermanent)
	}
	if model == "" {
		model = defaultOpenAIModel
	}

	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	client := openai.NewClient(opts...)

	return &openAIService{
		client: &client,
		model:  openai.ChatModel(model),
	}, nil
}

// Complete implements CompletionClient.
func (o *openAIService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	for _, turn := range req.History {
		if turn.Role == models.RoleAssistant {
			messages = append(messages, openai.AssistantMessage(turn.Content))
		} else {
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       o.model,
		Temperature: openai.Float(float64(req.Temperature)),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && isPermanentStatus(apiErr.StatusCode) {
			return "", fmt.Errorf("openai request rejected (%d): %w: %w", apiErr.StatusCode, ErrPermanent, err)
		}
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}
	return completion.Choices[0].Message.Content, nil
}

func isPermanentStatus(code int) bool {
	return code >= http.StatusBadRequest && code < http.StatusInternalServerError &&
		code != http.StatusTooManyRequests && code != http.StatusRequestTimeout
}
