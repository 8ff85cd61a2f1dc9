package chat

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/yihao03/Aistronaut/models"

	"github.com/go-redis/redis/v8"
)

const chatSessionPrefix = "chat:session:"

// SessionStore holds the transient selection state for each conversation.
type SessionStore interface {
	// Get returns the session for a conversation, zero-valued when absent.
	Get(ctx context.Context, conversationID string) (*models.ChatSession, error)
	Set(ctx context.Context, conversationID string, session *models.ChatSession) error
	Clear(ctx context.Context, conversationID string) error
}

// RedisSessionStore keeps sessions in Redis with a TTL so abandoned
// conversations age out of selection state.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, conversationID string) (*models.ChatSession, error) {
	key := chatSessionPrefix + conversationID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.ChatSession{ConversationID: conversationID}, nil
	}
	if err != nil {
		return nil, err
	}
	var session models.ChatSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, conversationID string, session *models.ChatSession) error {
	key := chatSessionPrefix + conversationID
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, conversationID string) error {
	key := chatSessionPrefix + conversationID
	return s.client.Del(ctx, key).Err()
}

// MemorySessionStore is the in-process SessionStore used by tests and
// single-node deployments running without Redis.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.ChatSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.ChatSession)}
}

func (s *MemorySessionStore) Get(ctx context.Context, conversationID string) (*models.ChatSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if session, ok := s.sessions[conversationID]; ok {
		copied := session
		return &copied, nil
	}
	return &models.ChatSession{ConversationID: conversationID}, nil
}

func (s *MemorySessionStore) Set(ctx context.Context, conversationID string, session *models.ChatSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[conversationID] = *session
	return nil
}

func (s *MemorySessionStore) Clear(ctx context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, conversationID)
	return nil
}
