package services

import (
	"context"
	"fmt"

	"resumeai/resume-assistant/internal/logger"
	"resumeai/resume-assistant/internal/repositories"
)

// SessionService fronts the session repository with per-user locking and
// re-extracts resume text from the stored bytes on every read.
type SessionService interface {
	StoreResume(ctx context.Context, userID string, data []byte) error
	// ResumeText returns repositories.ErrSessionNotFound when nothing was
	// uploaded and a *PageLimitError when the stored document is too long.
	ResumeText(ctx context.Context, userID string) (string, error)
	// Lock serializes work on one user's session. Callers must not call
	// StoreResume for the same user while holding it.
	Lock(userID string) (unlock func())
}

type sessionService struct {
	repo      repositories.SessionRepository
	pdfParser PDFParserService
	locks     *keyedMutex
}

func NewSessionService(repo repositories.SessionRepository, pdfParser PDFParserService) SessionService {
	return &sessionService{
		repo:      repo,
		pdfParser: pdfParser,
		locks:     newKeyedMutex(),
	}
}

// StoreResume implements SessionService.
func (s *sessionService) StoreResume(ctx context.Context, userID string, data []byte) error {
	unlock := s.locks.Lock(userID)
	defer unlock()

	if err := s.repo.SaveResume(ctx, userID, data); err != nil {
		return fmt.Errorf("failed to store resume: %w", err)
	}

	logger.Ctx(ctx).Info().
		Str("user_id", userID).
		Int("bytes", len(data)).
		Msg("📥 resume stored")
	return nil
}

// ResumeText implements SessionService.
func (s *sessionService) ResumeText(ctx context.Context, userID string) (string, error) {
	data, err := s.repo.FindResume(ctx, userID)
	if err != nil {
		return "", err
	}

	content, err := s.pdfParser.ExtractText(data)
	if err != nil {
		return "", err
	}
	return content.Text, nil
}

// Lock implements SessionService.
func (s *sessionService) Lock(userID string) func() {
	return s.locks.Lock(userID)
}
