package mocks

import (
	"context"

	"github.com/ibroximov13/FindCourse/domain"
)

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	GenerateFunc func(phone, email string) (string, error)
	VerifyFunc   func(phone, email, code string) bool
	SendFunc     func(ctx context.Context, phone, email string) error
}

var _ domain.OTPService = (*MockOTPService)(nil)

func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

func (m *MockOTPService) Generate(phone, email string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(phone, email)
	}
	return "1234", nil
}

func (m *MockOTPService) Verify(phone, email, code string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(phone, email, code)
	}
	return code == "1234"
}

func (m *MockOTPService) Send(ctx context.Context, phone, email string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, phone, email)
	}
	return nil
}
