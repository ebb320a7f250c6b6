package mocks

import (
	"time"

	"github.com/ibroximov13/FindCourse/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateAccessTokenFunc  func(userID uint, role domain.Role, userIP string, device domain.DeviceInfo) (string, error)
	GenerateRefreshTokenFunc func(userID uint, userIP string, device domain.DeviceInfo) (string, error)
	ValidateAccessTokenFunc  func(token string) (*domain.TokenClaims, error)
	ValidateRefreshTokenFunc func(token string) (*domain.TokenClaims, error)
	RefreshTTLFunc           func() time.Duration
	AccessTTLFunc            func() time.Duration
}

var _ domain.TokenService = (*MockTokenService)(nil)

func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) GenerateAccessToken(userID uint, role domain.Role, userIP string, device domain.DeviceInfo) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(userID, role, userIP, device)
	}
	return "mock_access_token", nil
}

func (m *MockTokenService) GenerateRefreshToken(userID uint, userIP string, device domain.DeviceInfo) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(userID, userIP, device)
	}
	return "mock_refresh_token", nil
}

func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

func (m *MockTokenService) ValidateRefreshToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateRefreshTokenFunc != nil {
		return m.ValidateRefreshTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

func (m *MockTokenService) RefreshTTL() time.Duration {
	if m.RefreshTTLFunc != nil {
		return m.RefreshTTLFunc()
	}
	return 7 * 24 * time.Hour
}

func (m *MockTokenService) AccessTTL() time.Duration {
	if m.AccessTTLFunc != nil {
		return m.AccessTTLFunc()
	}
	return time.Hour
}
