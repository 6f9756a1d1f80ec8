package repositories

import (
	"bytes"
	"context"
	"errors"
	"sync"

	"resumeai/resume-assistant/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores per-user state: the uploaded resume bytes and the
// chatbot conversation. User identifiers are caller-supplied and unvalidated.
type SessionRepository interface {
	SaveResume(ctx context.Context, userID string, data []byte) error
	FindResume(ctx context.Context, userID string) ([]byte, error)
	SaveConversation(ctx context.Context, conv *models.Conversation) error
	FindConversation(ctx context.Context, userID string) (*models.Conversation, error)
	Ping(ctx context.Context) error
	Close() error
}

type sessionEntry struct {
	resume       []byte
	hasResume    bool
	conversation *models.Conversation
}

// memorySessionRepository lives for the lifetime of the process. Entries are
// never evicted.
type memorySessionRepository struct {
	mu      sync.RWMutex
	entries map[string]*sessionEntry
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{
		entries: make(map[string]*sessionEntry),
	}
}

// SaveResume implements SessionRepository.
func (r *memorySessionRepository) SaveResume(ctx context.Context, userID string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.entry(userID)
	entry.resume = bytes.Clone(data)
	entry.hasResume = true
	return nil
}

// FindResume implements SessionRepository.
func (r *memorySessionRepository) FindResume(ctx context.Context, userID string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[userID]
	if !ok || !entry.hasResume {
		return nil, ErrSessionNotFound
	}
	if entry.resume == nil {
		return []byte{}, nil
	}
	return bytes.Clone(entry.resume), nil
}

// SaveConversation implements SessionRepository.
func (r *memorySessionRepository) SaveConversation(ctx context.Context, conv *models.Conversation) error {
	if conv == nil {
		return errors.New("cannot save nil conversation")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entry(conv.UserID).conversation = conv.Clone()
	return nil
}

// FindConversation implements SessionRepository.
func (r *memorySessionRepository) FindConversation(ctx context.Context, userID string) (*models.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[userID]
	if !ok || entry.conversation == nil {
		return nil, ErrSessionNotFound
	}
	return entry.conversation.Clone(), nil
}

// Ping implements SessionRepository.
func (r *memorySessionRepository) Ping(ctx context.Context) error {
	return nil
}

// Close implements SessionRepository.
func (r *memorySessionRepository) Close() error {
	return nil
}

// entry must be called with r.mu held for writing.
func (r *memorySessionRepository) entry(userID string) *sessionEntry {
	entry, ok := r.entries[userID]
	if !ok {
		entry = &sessionEntry{}
		r.entries[userID] = entry
	}
	return entry
}
