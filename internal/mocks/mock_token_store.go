package mocks

import (
	"context"
	"time"

	"github.com/ibroximov13/FindCourse/domain"
)

// MockTokenStore implements domain.TokenStore for testing
type MockTokenStore struct {
	AddFunc    func(ctx context.Context, token string, userID uint, ttl time.Duration) error
	HasFunc    func(ctx context.Context, token string) (bool, error)
	RemoveFunc func(ctx context.Context, token string) error
}

var _ domain.TokenStore = (*MockTokenStore)(nil)

func NewMockTokenStore() *MockTokenStore {
	return &MockTokenStore{}
}

func (m *MockTokenStore) Add(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, token, userID, ttl)
	}
	return nil
}

// Has defaults to true so happy-path refresh tests need no setup.
func (m *MockTokenStore) Has(ctx context.Context, token string) (bool, error) {
	if m.HasFunc != nil {
		return m.HasFunc(ctx, token)
	}
	return true, nil
}

func (m *MockTokenStore) Remove(ctx context.Context, token string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, token)
	}
	return nil
}
