package repository

import (
	"context"
	"errors"

	"walks-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WalkRepository defines the interface for data access of Walk entities
type WalkRepository interface {
	List(ctx context.Context, query *WalkListQuery) ([]model.Walk, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Walk, error)
	Create(ctx context.Context, walk *model.Walk) error
	Update(ctx context.Context, id uuid.UUID, walk *model.Walk) (*model.Walk, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Walk, error)
}

type walkRepository struct {
	db *gorm.DB
}

// NewWalkRepository returns a new instance of WalkRepository
func NewWalkRepository(db *gorm.DB) WalkRepository {
	return &walkRepository{db: db}
}

// List returns one page of walks with Difficulty and Region loaded
func (r *walkRepository) List(ctx context.Context, query *WalkListQuery) ([]model.Walk, error) {
	var walks []model.Walk

	db := r.db.WithContext(ctx).Model(&model.Walk{}).
		Preload("Difficulty").
		Preload("Region")

	if err := query.apply(db).Find(&walks).Error; err != nil {
		return nil, err
	}
	return walks, nil
}

func (r *walkRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Walk, error) {
	var walk model.Walk
	err := r.db.WithContext(ctx).
		Preload("Difficulty").
		Preload("Region").
		First(&walk, "walks.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &walk, nil
}

func (r *walkRepository) Create(ctx context.Context, walk *model.Walk) error {
	return r.db.WithContext(ctx).Omit("Difficulty", "Region").Create(walk).Error
}

// Update replaces all mutable fields of an existing walk in one write
func (r *walkRepository) Update(ctx context.Context, id uuid.UUID, walk *model.Walk) (*model.Walk, error) {
	var existing model.Walk
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing.Name = walk.Name
	existing.Description = walk.Description
	existing.LengthInKm = walk.LengthInKm
	existing.WalkImageUrl = walk.WalkImageUrl
	existing.DifficultyID = walk.DifficultyID
	existing.RegionID = walk.RegionID

	if err := r.db.WithContext(ctx).Omit("Difficulty", "Region").Save(&existing).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a walk and returns the deleted record
func (r *walkRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Walk, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&model.Walk{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return existing, nil
}
