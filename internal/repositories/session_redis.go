package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"resumeai/resume-assistant/internal/models"
)

const defaultKeyPrefix = "resume-assistant:session:"

type redisSessionRepository struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisSessionRepository builds a repository for redisURL. It does not
// connect; call Ping to verify the server is reachable.
// Every write refreshes the key's TTL; a zero ttl disables expiry.
func NewRedisSessionRepository(redisURL string, ttl time.Duration) (SessionRepository, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("could not parse redis connection string: %w", err)
	}

	client := redis.NewClient(opt)
	return NewRedisSessionRepositoryWithClient(client, defaultKeyPrefix, ttl), nil
}

func NewRedisSessionRepositoryWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) SessionRepository {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &redisSessionRepository{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (r *redisSessionRepository) resumeKey(userID string) string {
	return r.keyPrefix + userID + ":resume"
}

func (r *redisSessionRepository) chatKey(userID string) string {
	return r.keyPrefix + userID + ":chat"
}

// SaveResume implements SessionRepository.
func (r *redisSessionRepository) SaveResume(ctx context.Context, userID string, data []byte) error {
	if err := r.client.Set(ctx, r.resumeKey(userID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save resume for %s: %w", userID, err)
	}
	return nil
}

// FindResume implements SessionRepository.
func (r *redisSessionRepository) FindResume(ctx context.Context, userID string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.resumeKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find resume for %s: %w", userID, err)
	}
	if data == nil {
		return []byte{}, nil
	}
	return data, nil
}

// SaveConversation implements SessionRepository.
func (r *redisSessionRepository) SaveConversation(ctx context.Context, conv *models.Conversation) error {
	if conv == nil {
		return errors.New("cannot save nil conversation")
	}

	payload, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation for %s: %w", conv.UserID, err)
	}

	if err := r.client.Set(ctx, r.chatKey(conv.UserID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save conversation for %s: %w", conv.UserID, err)
	}
	return nil
}

// FindConversation implements SessionRepository.
func (r *redisSessionRepository) FindConversation(ctx context.Context, userID string) (*models.Conversation, error) {
	payload, err := r.client.Get(ctx, r.chatKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find conversation for %s: %w", userID, err)
	}

	var conv models.Conversation
	if err := json.Unmarshal(payload, &conv); err != nil {
		return nil, fmt.Errorf("corrupted conversation for %s: %w", userID, err)
	}
	return &conv, nil
}

// Ping implements SessionRepository.
func (r *redisSessionRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("unable to connect to redis: %w", err)
	}
	return nil
}

// Close implements SessionRepository.
func (r *redisSessionRepository) Close() error {
	return r.client.Close()
}
