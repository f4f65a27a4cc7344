package repository

import (
	"context"

	"walks-api/internal/model"

	"gorm.io/gorm"
)

// DifficultyRepository exposes the seeded difficulty reference data, read-only
type DifficultyRepository interface {
	GetAll(ctx context.Context) ([]model.Difficulty, error)
}

type difficultyRepository struct {
	db *gorm.DB
}

// NewDifficultyRepository returns a new instance of DifficultyRepository
func NewDifficultyRepository(db *gorm.DB) DifficultyRepository {
	return &difficultyRepository{db: db}
}

func (r *difficultyRepository) GetAll(ctx context.Context) ([]model.Difficulty, error) {
	var difficulties []model.Difficulty
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&difficulties).Error; err != nil {
		return nil, err
	}
	return difficulties, nil
}
