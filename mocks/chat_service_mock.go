package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumeai/resume-assistant/internal/models"
)

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) GetOrCreate(ctx context.Context, userID, resumeText string) (*models.Conversation, error) {
	args := m.Called(ctx, userID, resumeText)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Conversation), args.Error(1)
}

func (m *MockChatService) Respond(ctx context.Context, userID, message string) (string, error) {
	args := m.Called(ctx, userID, message)
	return args.String(0), args.Error(1)
}
