package mocks

import (
	"context"

	"github.com/ibroximov13/FindCourse/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	LoginFunc   func(ctx context.Context, phone, email, password, userIP, userAgent string) (*domain.AuthResult, error)
	RefreshFunc func(ctx context.Context, refreshToken string) (string, error)
}

var _ domain.AuthService = (*MockAuthService)(nil)

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Login(ctx context.Context, phone, email, password, userIP, userAgent string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, phone, email, password, userIP, userAgent)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return "", domain.ErrTokenInvalid
}
