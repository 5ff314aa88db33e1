package charging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"vibrovolt/internal/models"
)

// ErrSessionNotFound is returned for unknown session ids.
var ErrSessionNotFound = errors.New("charging: session not found")

// SessionStore keeps active charging sessions.
type SessionStore interface {
	Save(ctx context.Context, session models.ChargingSession) error
	Get(ctx context.Context, sessionID string) (models.ChargingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisStore caches active sessions in redis with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore returns a redis-backed store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("charging:active:%s", sessionID)
}

// Save caches the session.
func (s *RedisStore) Save(ctx context.Context, session models.ChargingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.ID), data, s.ttl).Err()
}

// Get returns the cached session.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (models.ChargingSession, error) {
	result, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.ChargingSession{}, ErrSessionNotFound
		}
		return models.ChargingSession{}, err
	}
	var session models.ChargingSession
	if err := json.Unmarshal([]byte(result), &session); err != nil {
		return models.ChargingSession{}, err
	}
	return session, nil
}

// Delete removes the cached session.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

// MemoryStore is the fallback when redis is not configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]models.ChargingSession
}

// NewMemoryStore returns an in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]models.ChargingSession)}
}

// Save stores the session.
func (s *MemoryStore) Save(_ context.Context, session models.ChargingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = session
	return nil
}

// Get returns the session or ErrSessionNotFound.
func (s *MemoryStore) Get(_ context.Context, sessionID string) (models.ChargingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.data[sessionID]
	if !ok {
		return models.ChargingSession{}, ErrSessionNotFound
	}
	return session, nil
}

// Delete removes the session.
func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}
