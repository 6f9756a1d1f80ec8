package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRewriteService struct {
	mock.Mock
}

func (m *MockRewriteService) Rewrite(ctx context.Context, resumeText string) (string, error) {
	args := m.Called(ctx, resumeText)
	return args.String(0), args.Error(1)
}
