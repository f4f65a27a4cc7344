package repository

import (
	"context"
	"errors"

	"walks-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegionRepository defines the interface for data access of Region entities.
// Two interchangeable implementations exist: a GORM-backed one and an
// in-memory one, selected once at process startup.
type RegionRepository interface {
	GetAll(ctx context.Context) ([]model.Region, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Region, error)
	Create(ctx context.Context, region *model.Region) error
	Update(ctx context.Context, id uuid.UUID, region *model.Region) (*model.Region, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Region, error)
}

type regionRepository struct {
	db *gorm.DB
}

// NewRegionRepository returns the database-backed RegionRepository
func NewRegionRepository(db *gorm.DB) RegionRepository {
	return &regionRepository{db: db}
}

func (r *regionRepository) GetAll(ctx context.Context) ([]model.Region, error) {
	var regions []model.Region
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&regions).Error; err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *regionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Region, error) {
	var region model.Region
	if err := r.db.WithContext(ctx).First(&region, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &region, nil
}

func (r *regionRepository) Create(ctx context.Context, region *model.Region) error {
	return r.db.WithContext(ctx).Create(region).Error
}

// Update replaces all mutable fields of an existing region
func (r *regionRepository) Update(ctx context.Context, id uuid.UUID, region *model.Region) (*model.Region, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Code = region.Code
	existing.Name = region.Name
	existing.RegionImageUrl = region.RegionImageUrl

	if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a region and returns the deleted record
func (r *regionRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Region, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&model.Region{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return existing, nil
}
