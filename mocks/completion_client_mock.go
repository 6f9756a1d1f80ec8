package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumeai/resume-assistant/internal/services"
)

type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) Complete(ctx context.Context, req services.CompletionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
