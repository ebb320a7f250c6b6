package mocks

import (
	"context"

	"github.com/ibroximov13/FindCourse/domain"
)

// MockAccountService implements domain.AccountService for testing
type MockAccountService struct {
	RegisterFunc      func(ctx context.Context, in domain.RegisterInput) (*domain.User, error)
	CreateAdminFunc   func(ctx context.Context, in domain.RegisterInput) (*domain.User, error)
	GetProfileFunc    func(ctx context.Context, userID uint) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, userID uint, upd domain.ProfileUpdate) (*domain.User, error)
	ListFunc          func(ctx context.Context, q domain.ListUsersQuery) ([]*domain.User, error)
	PatchFunc         func(ctx context.Context, id uint, patch domain.UserPatch) (*domain.User, error)
	DeleteFunc        func(ctx context.Context, id uint) error
	SendResetOTPFunc  func(ctx context.Context, userID uint, email string) error
	ResetPasswordFunc func(ctx context.Context, userID uint, email, code, newPassword string) error
}

var _ domain.AccountService = (*MockAccountService)(nil)

func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

func (m *MockAccountService) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, in)
	}
	return nil, domain.ErrUserExists
}

func (m *MockAccountService) CreateAdmin(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	if m.CreateAdminFunc != nil {
		return m.CreateAdminFunc(ctx, in)
	}
	return nil, domain.ErrUserExists
}

func (m *MockAccountService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAccountService) UpdateProfile(ctx context.Context, userID uint, upd domain.ProfileUpdate) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, upd)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAccountService) List(ctx context.Context, q domain.ListUsersQuery) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return nil, nil
}

func (m *MockAccountService) Patch(ctx context.Context, id uint, patch domain.UserPatch) (*domain.User, error) {
	if m.PatchFunc != nil {
		return m.PatchFunc(ctx, id, patch)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAccountService) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockAccountService) SendResetOTP(ctx context.Context, userID uint, email string) error {
	if m.SendResetOTPFunc != nil {
		return m.SendResetOTPFunc(ctx, userID, email)
	}
	return nil
}

func (m *MockAccountService) ResetPassword(ctx context.Context, userID uint, email, code, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, userID, email, code, newPassword)
	}
	return nil
}
