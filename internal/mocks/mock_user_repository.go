package mocks

import (
	"context"

	"github.com/ibroximov13/FindCourse/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc              func(ctx context.Context, user *domain.User) error
	FindByIDFunc            func(ctx context.Context, id uint) (*domain.User, error)
	FindByPhoneFunc         func(ctx context.Context, phone string) (*domain.User, error)
	FindByPhoneAndEmailFunc func(ctx context.Context, phone, email string) (*domain.User, error)
	ListFunc                func(ctx context.Context, q domain.ListUsersQuery) ([]*domain.User, error)
	UpdateFunc              func(ctx context.Context, user *domain.User) error
	DeleteFunc              func(ctx context.Context, id uint) error
	CountByRoleFunc         func(ctx context.Context, role domain.Role) (int64, error)
}

var _ domain.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByPhoneAndEmail(ctx context.Context, phone, email string) (*domain.User, error) {
	if m.FindByPhoneAndEmailFunc != nil {
		return m.FindByPhoneAndEmailFunc(ctx, phone, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) List(ctx context.Context, q domain.ListUsersQuery) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	if m.CountByRoleFunc != nil {
		return m.CountByRoleFunc(ctx, role)
	}
	return 0, nil
}
