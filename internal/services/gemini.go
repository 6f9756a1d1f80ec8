package services

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"resumeai/resume-assistant/internal/models"
)

const defaultGeminiModel = "gemini-2.5-flash"

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(ctx context.Context, apiKey, model string) (CompletionClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty: %w", ErrPermanent)
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: model,
	}, nil
}

// Complete implements CompletionClient.
func (g *geminiService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	temperature := req.Temperature
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, turn := range req.History {
		role := genai.Role(genai.RoleUser)
		if turn.Role == models.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(req.Prompt, genai.RoleUser))

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return "", classifyGeminiError(err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", ErrEmptyCompletion)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

// classifyGeminiError marks client-side rejections (bad key, bad request) as
// permanent. Rate limits, timeouts and server errors stay retryable.
func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && isPermanentStatus(apiErr.Code) {
		return fmt.Errorf("gemini request rejected (%d): %w: %w", apiErr.Code, ErrPermanent, err)
	}
	return fmt.Errorf("failed to generate text: %w", err)
}
