package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ibroximov13/FindCourse/domain"
)

// RegionRepositoryImpl implements domain.RegionRepository using GORM
type RegionRepositoryImpl struct {
	db *gorm.DB
}

// DBRegion represents the database model for Region
type DBRegion struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DBRegion) TableName() string {
	return "regions"
}

// NewRegionRepository creates a new region repository
func NewRegionRepository(db *gorm.DB) domain.RegionRepository {
	return &RegionRepositoryImpl{db: db}
}

// Create implements domain.RegionRepository
func (r *RegionRepositoryImpl) Create(ctx context.Context, region *domain.Region) error {
	dbRegion := &DBRegion{Name: region.Name}
	if err := r.db.WithContext(ctx).Create(dbRegion).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrRegionExists
		}
		return err
	}
	region.ID = dbRegion.ID
	region.CreatedAt = dbRegion.CreatedAt
	region.UpdatedAt = dbRegion.UpdatedAt
	return nil
}

// FindByID implements domain.RegionRepository
func (r *RegionRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Region, error) {
	var dbRegion DBRegion
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbRegion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRegionNotFound
		}
		return nil, err
	}
	return dbRegionToDomain(&dbRegion), nil
}

// FindByName implements domain.RegionRepository
func (r *RegionRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.Region, error) {
	var dbRegion DBRegion
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&dbRegion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRegionNotFound
		}
		return nil, err
	}
	return dbRegionToDomain(&dbRegion), nil
}

// List implements domain.RegionRepository
func (r *RegionRepositoryImpl) List(ctx context.Context) ([]*domain.Region, error) {
	var dbRegions []DBRegion
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&dbRegions).Error; err != nil {
		return nil, err
	}
	regions := make([]*domain.Region, 0, len(dbRegions))
	for i := range dbRegions {
		regions = append(regions, dbRegionToDomain(&dbRegions[i]))
	}
	return regions, nil
}

// Update implements domain.RegionRepository
func (r *RegionRepositoryImpl) Update(ctx context.Context, region *domain.Region) error {
	res := r.db.WithContext(ctx).Model(&DBRegion{}).Where("id = ?", region.ID).Update("name", region.Name)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrRegionExists
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRegionNotFound
	}
	return nil
}

// Delete implements domain.RegionRepository
func (r *RegionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&DBRegion{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRegionNotFound
	}
	return nil
}

func dbRegionToDomain(dbRegion *DBRegion) *domain.Region {
	return &domain.Region{
		ID:        dbRegion.ID,
		Name:      dbRegion.Name,
		CreatedAt: dbRegion.CreatedAt,
		UpdatedAt: dbRegion.UpdatedAt,
	}
}
