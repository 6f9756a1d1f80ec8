package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resumeai/resume-assistant/internal/logger"
	"resumeai/resume-assistant/internal/models"
	"resumeai/resume-assistant/internal/repositories"
)

type ChatService interface {
	// GetOrCreate returns the user's conversation, creating one seeded with
	// resumeText if none exists. An existing conversation is returned
	// unchanged even when resumeText differs from the one it was seeded with.
	GetOrCreate(ctx context.Context, userID, resumeText string) (*models.Conversation, error)
	// Respond answers message with the full conversation as context.
	Respond(ctx context.Context, userID, message string) (string, error)
}

type chatService struct {
	repo          repositories.SessionRepository
	sessions      SessionService
	client        CompletionClient
	promptBuilder *PromptBuilder
}

func NewChatService(
	repo repositories.SessionRepository,
	sessions SessionService,
	client CompletionClient,
	promptBuilder *PromptBuilder,
) ChatService {
	return &chatService{
		repo:          repo,
		sessions:      sessions,
		client:        client,
		promptBuilder: promptBuilder,
	}
}

// GetOrCreate implements ChatService.
func (c *chatService) GetOrCreate(ctx context.Context, userID, resumeText string) (*models.Conversation, error) {
	unlock := c.sessions.Lock(userID)
	defer unlock()

	return c.getOrCreate(ctx, userID, resumeText)
}

// Respond implements ChatService.
func (c *chatService) Respond(ctx context.Context, userID, message string) (string, error) {
	unlock := c.sessions.Lock(userID)
	defer unlock()

	resumeText, err := c.sessions.ResumeText(ctx, userID)
	if err != nil {
		return "", err
	}

	conv, err := c.getOrCreate(ctx, userID, resumeText)
	if err != nil {
		return "", err
	}

	reply, err := c.client.Complete(ctx, CompletionRequest{
		System:      conv.SystemPrompt,
		History:     conv.History,
		Prompt:      message,
		Temperature: c.promptBuilder.ChatTemperature(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	conv.AppendExchange(message, reply)
	if err := c.repo.SaveConversation(ctx, conv); err != nil {
		return "", fmt.Errorf("failed to save conversation: %w", err)
	}

	logger.Ctx(ctx).Debug().
		Str("user_id", userID).
		Str("conversation_id", conv.ID).
		Int("turns", len(conv.History)).
		Msg("chat reply generated")
	return reply, nil
}

func (c *chatService) getOrCreate(ctx context.Context, userID, resumeText string) (*models.Conversation, error) {
	conv, err := c.repo.FindConversation(ctx, userID)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, repositories.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	systemPrompt, _, err := c.promptBuilder.BuildChatSystemPrompt(resumeText)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	conv = &models.Conversation{
		ID:           uuid.NewString(),
		UserID:       userID,
		SystemPrompt: systemPrompt,
		History:      []models.ChatTurn{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := c.repo.SaveConversation(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to save conversation: %w", err)
	}

	logger.Ctx(ctx).Info().
		Str("user_id", userID).
		Str("conversation_id", conv.ID).
		Msg("💬 conversation created")
	return conv, nil
}
