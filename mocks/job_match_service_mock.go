package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumeai/resume-assistant/internal/models"
)

type MockJobMatchService struct {
	mock.Mock
}

func (m *MockJobMatchService) Match(ctx context.Context, resumeText, jobDescription string) (*models.JobMatchResult, error) {
	args := m.Called(ctx, resumeText, jobDescription)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.JobMatchResult), args.Error(1)
}
