package mocks

import (
	"context"

	"github.com/ibroximov13/FindCourse/domain"
)

// MockRegionRepository implements domain.RegionRepository for testing
type MockRegionRepository struct {
	CreateFunc     func(ctx context.Context, region *domain.Region) error
	FindByIDFunc   func(ctx context.Context, id uint) (*domain.Region, error)
	FindByNameFunc func(ctx context.Context, name string) (*domain.Region, error)
	ListFunc       func(ctx context.Context) ([]*domain.Region, error)
	UpdateFunc     func(ctx context.Context, region *domain.Region) error
	DeleteFunc     func(ctx context.Context, id uint) error
}

var _ domain.RegionRepository = (*MockRegionRepository)(nil)

func NewMockRegionRepository() *MockRegionRepository {
	return &MockRegionRepository{}
}

func (m *MockRegionRepository) Create(ctx context.Context, region *domain.Region) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, region)
	}
	return nil
}

func (m *MockRegionRepository) FindByID(ctx context.Context, id uint) (*domain.Region, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrRegionNotFound
}

func (m *MockRegionRepository) FindByName(ctx context.Context, name string) (*domain.Region, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, domain.ErrRegionNotFound
}

func (m *MockRegionRepository) List(ctx context.Context) ([]*domain.Region, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockRegionRepository) Update(ctx context.Context, region *domain.Region) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, region)
	}
	return nil
}

func (m *MockRegionRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
