package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumeai/resume-assistant/internal/models"
)

type MockAnalyzerService struct {
	mock.Mock
}

func (m *MockAnalyzerService) Analyze(ctx context.Context, data []byte) (*models.AnalysisResult, error) {
	args := m.Called(ctx, data)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.AnalysisResult), args.Error(1)
}

func (m *MockAnalyzerService) AnalyzeText(ctx context.Context, resumeText string) (*models.AnalysisResult, error) {
	args := m.Called(ctx, resumeText)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.AnalysisResult), args.Error(1)
}
