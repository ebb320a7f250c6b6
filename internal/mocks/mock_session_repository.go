package mocks

import (
	"context"

	"github.com/ibroximov13/FindCourse/domain"
)

// MockSessionRepository implements domain.SessionRepository for testing
type MockSessionRepository struct {
	CreateFunc          func(ctx context.Context, session *domain.Session) error
	FindByIDFunc        func(ctx context.Context, id uint) (*domain.Session, error)
	FindByUserAndIPFunc func(ctx context.Context, userID uint, userIP string) (*domain.Session, error)
	ListByUserFunc      func(ctx context.Context, userID uint) ([]*domain.Session, error)
	ListAllFunc         func(ctx context.Context) ([]*domain.Session, error)
	DeleteFunc          func(ctx context.Context, id uint) error
}

var _ domain.SessionRepository = (*MockSessionRepository)(nil)

func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *MockSessionRepository) FindByID(ctx context.Context, id uint) (*domain.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrSessionNotFound
}

func (m *MockSessionRepository) FindByUserAndIP(ctx context.Context, userID uint, userIP string) (*domain.Session, error) {
	if m.FindByUserAndIPFunc != nil {
		return m.FindByUserAndIPFunc(ctx, userID, userIP)
	}
	return nil, domain.ErrSessionNotFound
}

func (m *MockSessionRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.Session, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockSessionRepository) ListAll(ctx context.Context) ([]*domain.Session, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockSessionRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
