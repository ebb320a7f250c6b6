package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ibroximov13/FindCourse/domain"
)

// RedisTokenStore implements domain.TokenStore on Redis. Tokens are keyed by
// their SHA-256 so the raw credential never lands in the cache, and the TTL
// matches the refresh-token lifetime so revocation happens automatically.
type RedisTokenStore struct {
	client *redis.Client
	prefix string
}

// NewRedisTokenStore creates a Redis-backed refresh-token allow-list
func NewRedisTokenStore(client *redis.Client) domain.TokenStore {
	return &RedisTokenStore{
		client: client,
		prefix: "refresh:",
	}
}

func (s *RedisTokenStore) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return s.prefix + hex.EncodeToString(sum[:])
}

// Add implements domain.TokenStore
func (s *RedisTokenStore) Add(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(token), userID, ttl).Err()
}

// Has implements domain.TokenStore
func (s *RedisTokenStore) Has(ctx context.Context, token string) (bool, error) {
	_, err := s.client.Get(ctx, s.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Remove implements domain.TokenStore
func (s *RedisTokenStore) Remove(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}

// MemoryTokenStore implements domain.TokenStore in process memory. It keeps
// the original single-instance semantics: a restart revokes every
// outstanding refresh token.
type MemoryTokenStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

// NewMemoryTokenStore creates an in-memory refresh-token allow-list
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{entries: make(map[string]time.Time)}
}

// Add implements domain.TokenStore
func (s *MemoryTokenStore) Add(_ context.Context, token string, _ uint, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = time.Now().Add(ttl)
	return nil
}

// Has implements domain.TokenStore
func (s *MemoryTokenStore) Has(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.entries[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(s.entries, token)
		return false, nil
	}
	return true, nil
}

// Remove implements domain.TokenStore
func (s *MemoryTokenStore) Remove(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

var (
	_ domain.TokenStore = (*RedisTokenStore)(nil)
	_ domain.TokenStore = (*MemoryTokenStore)(nil)
)
